package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the root bookkeeping record: who booked, what they booked and what is still owed.
type Client struct {
	ClientID       string          `json:"_id"`
	Name           string          `json:"name"`
	PhoneNumber    string          `json:"phoneNumber"`
	Responsable    string          `json:"responsable"`
	Services       []Service       `json:"services"`
	PaymentMethod  string          `json:"paymentMethod"`
	DateOfBooking  time.Time       `json:"dateOfBooking"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`     // sum of Services[].Price
	RemainingTotal decimal.Decimal `json:"remainingTotal"` // sum of Services[].RemainingPayment
	AuditFields
}

// OutstandingTotal sums the remaining payment of services that are not yet settled.
// Unlike RemainingTotal it honours RemainingPaymentMethod.
func (c Client) OutstandingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Services {
		if s.Status() != Paid {
			total = total.Add(s.RemainingPayment)
		}
	}
	return total
}

// ClientFields are the client-level form values, without services or derived totals.
type ClientFields struct {
	Name          string
	PhoneNumber   string
	Responsable   string
	PaymentMethod string
	DateOfBooking time.Time
}

// ClientPatch holds an inline edit. Nil fields are left untouched.
type ClientPatch struct {
	Name          *string
	PhoneNumber   *string
	Responsable   *string
	PaymentMethod *string
	DateOfBooking *time.Time
	Services      *[]Service
}

// Fields extracts the form values of an existing client.
func (c Client) Fields() ClientFields {
	return ClientFields{
		Name:          c.Name,
		PhoneNumber:   c.PhoneNumber,
		Responsable:   c.Responsable,
		PaymentMethod: c.PaymentMethod,
		DateOfBooking: c.DateOfBooking,
	}
}
