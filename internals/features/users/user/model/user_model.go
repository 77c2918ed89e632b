package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table. panditku only ever has a handful
// of rows here: the owner and the admins who edit site content.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "admin"
	}
}

// Validate checks the struct against the declared rules.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msg string
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " is required. "
		case "email":
			msg += "Email format is invalid. "
		case "min":
			msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters. "
		case "max":
			msg += fieldErr.Field() + " must be under " + fieldErr.Param() + " characters. "
		default:
			msg += fieldErr.Field() + " is invalid. "
		}
	}
	return errors.New(msg)
}
