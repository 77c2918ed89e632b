package dto

import (
	"time"

	"github.com/google/uuid"

	"panditku_backend/internals/features/donations/model"
)

type CreateDonationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"omitempty,max=500"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
}

type DonationDTO struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       string     `json:"order_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Message       string     `json:"message"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	PaidAt        *time.Time `json:"paid_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToDonationDTO(m model.DonationModel) DonationDTO {
	return DonationDTO{
		ID:            m.DonationID,
		OrderID:       m.DonationOrderID,
		Name:          m.DonationName,
		Email:         m.DonationEmail,
		Message:       m.DonationMessage,
		Amount:        m.DonationAmount,
		Status:        m.DonationStatus,
		PaymentMethod: m.DonationPaymentMethod,
		PaidAt:        m.DonationPaidAt,
		CreatedAt:     m.DonationCreatedAt,
	}
}

func ToDonationDTOs(models []model.DonationModel) []DonationDTO {
	out := make([]DonationDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToDonationDTO(m))
	}
	return out
}
