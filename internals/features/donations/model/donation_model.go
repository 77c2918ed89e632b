package model

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "pending"
	DonationStatusPaid     DonationStatus = "paid"
	DonationStatusExpired  DonationStatus = "expired"
	DonationStatusCanceled DonationStatus = "canceled"
)

// DonationModel is one dakshina offering started from the public site.
// OrderID is the external key Midtrans calls back with.
type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(64);not null;uniqueIndex" json:"donation_order_id"`

	DonationName    string `gorm:"column:donation_name;type:varchar(100);not null" json:"donation_name"`
	DonationEmail   string `gorm:"column:donation_email;type:varchar(255)" json:"donation_email"`
	DonationPhone   string `gorm:"column:donation_phone;type:varchar(30)" json:"donation_phone"`
	DonationMessage string `gorm:"column:donation_message;type:varchar(500)" json:"donation_message"`

	DonationAmount int64  `gorm:"column:donation_amount;not null" json:"donation_amount"`
	DonationStatus string `gorm:"column:donation_status;type:varchar(20);not null;default:'pending';index" json:"donation_status"`

	DonationPaymentToken  string     `gorm:"column:donation_payment_token;type:varchar(128)" json:"-"`
	DonationPaymentMethod string     `gorm:"column:donation_payment_method;type:varchar(50)" json:"donation_payment_method"`
	DonationPaidAt        *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at"`

	DonationCreatedAt time.Time `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	DonationUpdatedAt time.Time `gorm:"column:donation_updated_at;autoUpdateTime" json:"donation_updated_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}
