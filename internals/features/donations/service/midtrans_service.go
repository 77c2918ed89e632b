// internals/features/donations/service/midtrans_service.go
package service

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"panditku_backend/internals/configs"
)

var snapClient snap.Client

// InitMidtrans wires the Snap client once at startup. Sandbox unless
// MIDTRANS_ENV=production.
func InitMidtrans() {
	env := midtrans.Sandbox
	if strings.EqualFold(os.Getenv("MIDTRANS_ENV"), "production") {
		env = midtrans.Production
	}
	snapClient.New(configs.MidtransServerKey, env)
	log.Println("[INFO] ✅ Midtrans Snap client initialized")
}

// NewOrderID builds the external payment reference stored on the row.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("DAKSHINA-%d", now.UnixNano())
}

// GenerateSnapToken creates a Snap transaction for one donation and
// returns the token the frontend feeds to the Midtrans widget.
func GenerateSnapToken(orderID, name, email string, amount int64) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    orderID,
			Name:  "Dakshina offering",
			Price: amount,
			Qty:   1,
		}},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", fmt.Errorf("create snap transaction: %w", err)
	}
	return resp.Token, nil
}

// MapTransactionStatus folds the Midtrans notification status pair into
// the donation status column. Unknown statuses map to "" (ignore).
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" || fraudStatus == "" {
			return "paid"
		}
		return "pending"
	case "settlement":
		return "paid"
	case "pending":
		return "pending"
	case "expire":
		return "expired"
	case "cancel", "deny":
		return "canceled"
	default:
		return ""
	}
}
