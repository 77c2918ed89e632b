package service

import (
	"strings"
	"testing"
	"time"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		txStatus    string
		fraudStatus string
		want        string
	}{
		{"capture", "accept", "paid"},
		{"capture", "", "paid"},
		{"capture", "challenge", "pending"},
		{"settlement", "", "paid"},
		{"pending", "", "pending"},
		{"expire", "", "expired"},
		{"cancel", "", "canceled"},
		{"deny", "", "canceled"},
		{"refund", "", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := MapTransactionStatus(tc.txStatus, tc.fraudStatus); got != tc.want {
			t.Errorf("MapTransactionStatus(%q, %q) = %q, want %q", tc.txStatus, tc.fraudStatus, got, tc.want)
		}
	}
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID(time.Unix(1700000000, 0))
	if !strings.HasPrefix(id, "DAKSHINA-") {
		t.Fatalf("unexpected order id %q", id)
	}
	if id == NewOrderID(time.Unix(1700000001, 0)) {
		t.Fatal("order ids should differ per timestamp")
	}
}
