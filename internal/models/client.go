package models

// Service is the stored form of a booked service. It lives inside its client document
// (MongoDB) or the services JSONB column (Postgres).
type Service struct {
	Name                   string  `json:"name" bson:"name"`
	Price                  float64 `json:"price" bson:"price"`
	UpfrontPayment         float64 `json:"upfrontPayment" bson:"upfrontPayment"`
	RemainingPayment       float64 `json:"remainingPayment" bson:"remainingPayment"`
	StartDate              string  `json:"startDate" bson:"startDate"`
	EndDate                string  `json:"endDate" bson:"endDate"`
	UpfrontPaymentMethod   string  `json:"upfrontPaymentMethod,omitempty" bson:"upfrontPaymentMethod,omitempty"`
	RemainingPaymentMethod string  `json:"remainingPaymentMethod,omitempty" bson:"remainingPaymentMethod,omitempty"`
}

// Client is the stored client document.
type Client struct {
	ClientID       string    `json:"_id" bson:"_id" db:"client_id"`
	Name           string    `json:"name" bson:"name" db:"name"`
	PhoneNumber    string    `json:"phoneNumber" bson:"phoneNumber" db:"phone_number"`
	Responsable    string    `json:"responsable" bson:"responsable" db:"responsable"`
	Services       []Service `json:"services" bson:"services" db:"services"`
	PaymentMethod  string    `json:"paymentMethod" bson:"paymentMethod" db:"payment_method"`
	DateOfBooking  string    `json:"dateOfBooking" bson:"dateOfBooking" db:"date_of_booking"`
	TotalPrice     float64   `json:"totalPrice" bson:"totalPrice" db:"total_price"`
	RemainingTotal float64   `json:"remainingTotal" bson:"remainingTotal" db:"remaining_total"`
	AuditFields    `bson:",inline"`
}
