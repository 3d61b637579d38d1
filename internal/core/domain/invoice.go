package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed service.
type InvoiceLine struct {
	Name             string          `json:"name"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	Price            decimal.Decimal `json:"price"`
	UpfrontPayment   decimal.Decimal `json:"upfrontPayment"`
	RemainingPayment decimal.Decimal `json:"remainingPayment"`
	Status           PaymentStatus   `json:"status"`
}

// InvoiceView is the printable projection of a client. TotalAmount always bills the full
// contracted amount, independent of what has been paid.
type InvoiceView struct {
	ClientName    string          `json:"clientName"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"paymentMethod"`
	BookingDate   time.Time       `json:"bookingDate"`
	Services      []InvoiceLine   `json:"services"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}
