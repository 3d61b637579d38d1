package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a single booked service.
type PaymentStatus string

const (
	Unpaid        PaymentStatus = "UNPAID"
	PartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	Paid          PaymentStatus = "PAID"
)

// Service is one bookable offering attached to a Client. It has no identity of its own.
type Service struct {
	Name                   string          `json:"name"`
	Price                  decimal.Decimal `json:"price"`
	UpfrontPayment         decimal.Decimal `json:"upfrontPayment"`
	RemainingPayment       decimal.Decimal `json:"remainingPayment"` // always Price - UpfrontPayment
	StartDate              time.Time       `json:"startDate"`
	EndDate                time.Time       `json:"endDate"`
	UpfrontPaymentMethod   string          `json:"upfrontPaymentMethod,omitempty"`
	RemainingPaymentMethod string          `json:"remainingPaymentMethod,omitempty"`
}

// Status derives the settlement state. A remaining payment method marks the service
// as settled regardless of the numeric remaining amount.
func (s Service) Status() PaymentStatus {
	switch {
	case s.RemainingPaymentMethod != "":
		return Paid
	case s.RemainingPayment.LessThanOrEqual(decimal.Zero):
		return Paid
	case s.UpfrontPayment.GreaterThan(decimal.Zero):
		return PartiallyPaid
	default:
		return Unpaid
	}
}

// ServiceInput carries the raw booking form values for one service.
type ServiceInput struct {
	Name                 string
	Price                decimal.Decimal
	UpfrontPayment       decimal.Decimal
	UpfrontPaymentMethod string
	StartDate            time.Time
	DurationHours        int
}
