// internals/features/donations/controller/donation_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"panditku_backend/internals/features/donations/dto"
	"panditku_backend/internals/features/donations/model"
	"panditku_backend/internals/features/donations/service"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// =============================
// 🙏 POST /api/public/donations
// =============================
// Creates a pending donation row, then asks Midtrans for a Snap token.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.DonationModel{
		DonationOrderID: service.NewOrderID(time.Now()),
		DonationName:    strings.TrimSpace(req.Name),
		DonationEmail:   strings.TrimSpace(req.Email),
		DonationPhone:   strings.TrimSpace(req.Phone),
		DonationMessage: strings.TrimSpace(req.Message),
		DonationAmount:  req.Amount,
		DonationStatus:  string(model.DonationStatusPending),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}

	token, err := service.GenerateSnapToken(row.DonationOrderID, row.DonationName, row.DonationEmail, row.DonationAmount)
	if err != nil {
		log.Printf("[ERROR] donation %s: snap token failed: %v", row.DonationOrderID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway is unavailable, please try again")
	}

	if err := ctrl.DB.Model(&row).Update("donation_payment_token", token).Error; err != nil {
		log.Printf("[WARNING] donation %s: token not persisted: %v", row.DonationOrderID, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donation created successfully", fiber.Map{
		"order_id":   row.DonationOrderID,
		"snap_token": token,
	})
}

// =============================
// 🔔 POST /api/donations/notification (Midtrans webhook, unauthenticated)
// =============================
// Idempotent: replayed notifications land on the same terminal status.
func (ctrl *DonationController) HandleNotification(c *fiber.Ctx) error {
	var payload struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	if payload.OrderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing order_id")
	}

	newStatus := service.MapTransactionStatus(payload.TransactionStatus, payload.FraudStatus)
	if newStatus == "" {
		log.Printf("[INFO] donation %s: ignoring transaction_status %q", payload.OrderID, payload.TransactionStatus)
		return helper.Success(c, "Notification ignored", nil)
	}

	var row model.DonationModel
	if err := ctrl.DB.First(&row, "donation_order_id = ?", payload.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Unknown order")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}

	updates := map[string]any{
		"donation_status":         newStatus,
		"donation_payment_method": payload.PaymentType,
	}
	if newStatus == string(model.DonationStatusPaid) && row.DonationPaidAt == nil {
		updates["donation_paid_at"] = time.Now()
	}
	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
	}

	log.Printf("[INFO] donation %s: %s -> %s", payload.OrderID, row.DonationStatus, newStatus)
	return helper.Success(c, "Notification processed", nil)
}

// =============================
// 📚 GET /api/a/donations
// =============================
func (ctrl *DonationController) ListDonations(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "donation_created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.DonationModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("donation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count donations")
	}

	var rows []model.DonationModel
	if err := q.
		Order(fmt.Sprintf("%s %s", donationSortColumn(p.SortBy), p.SortOrder)).
		Limit(p.PerPage).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.Success(c, "Donations fetched successfully", fiber.Map{
		"items":      dto.ToDonationDTOs(rows),
		"pagination": helper.PaginationMeta(p, total),
	})
}

func donationSortColumn(requested string) string {
	switch requested {
	case "donation_amount", "donation_created_at", "donation_paid_at":
		return requested
	default:
		return "donation_created_at"
	}
}
