package dto

import (
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineResponse is one billed service.
type InvoiceLineResponse struct {
	Name             string               `json:"name"`
	StartDate        time.Time            `json:"startDate"`
	EndDate          time.Time            `json:"endDate"`
	Price            decimal.Decimal      `json:"price"`
	UpfrontPayment   decimal.Decimal      `json:"upfrontPayment"`
	RemainingPayment decimal.Decimal      `json:"remainingPayment"`
	Status           domain.PaymentStatus `json:"status"`
}

// InvoiceResponse is the JSON form of a client invoice.
type InvoiceResponse struct {
	ClientName    string                `json:"clientName"`
	Phone         string                `json:"phone"`
	PaymentMethod string                `json:"paymentMethod"`
	BookingDate   time.Time             `json:"bookingDate"`
	Services      []InvoiceLineResponse `json:"services"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
}

// ToInvoiceResponse converts a domain.InvoiceView.
func ToInvoiceResponse(v *domain.InvoiceView) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(v.Services))
	for i, l := range v.Services {
		lines[i] = InvoiceLineResponse(l)
	}
	return InvoiceResponse{
		ClientName:    v.ClientName,
		Phone:         v.Phone,
		PaymentMethod: v.PaymentMethod,
		BookingDate:   v.BookingDate,
		Services:      lines,
		TotalAmount:   v.TotalAmount,
	}
}
