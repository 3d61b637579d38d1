package dto

import (
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceRequest is a fully formed service as sent by the direct client API.
// RemainingPayment is never accepted; it is recomputed on save.
type ServiceRequest struct {
	Name                   string          `json:"name" binding:"required,servicename"`
	Price                  decimal.Decimal `json:"price"`
	UpfrontPayment         decimal.Decimal `json:"upfrontPayment"`
	StartDate              time.Time       `json:"startDate"`
	EndDate                time.Time       `json:"endDate"`
	UpfrontPaymentMethod   string          `json:"upfrontPaymentMethod,omitempty" binding:"omitempty,paymentmethod"`
	RemainingPaymentMethod string          `json:"remainingPaymentMethod,omitempty" binding:"omitempty,paymentmethod"`
}

// ServiceInputRequest is one row of the booking form: a duration instead of an end date.
type ServiceInputRequest struct {
	Name                 string          `json:"name" binding:"required,servicename"`
	Price                decimal.Decimal `json:"price"`
	UpfrontPayment       decimal.Decimal `json:"upfrontPayment"`
	UpfrontPaymentMethod string          `json:"upfrontPaymentMethod,omitempty" binding:"omitempty,paymentmethod"`
	StartDate            time.Time       `json:"startDate" binding:"required"`
	DurationHours        int             `json:"durationHours" binding:"required,min=1"`
}

// ClientFieldsRequest carries the client-level form values shared by every write endpoint.
type ClientFieldsRequest struct {
	Name          string    `json:"name" binding:"required"`
	PhoneNumber   string    `json:"phoneNumber" binding:"required,phone8"`
	Responsable   string    `json:"responsable" binding:"required,personname"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,paymentmethod"`
	DateOfBooking time.Time `json:"dateOfBooking" binding:"required"`
}

// CreateClientRequest is the direct API payload. Services may be empty.
type CreateClientRequest struct {
	ClientFieldsRequest
	Services []ServiceRequest `json:"services" binding:"dive"`
}

// ReplaceClientRequest fully replaces a stored client identified by _id.
type ReplaceClientRequest struct {
	ClientID string `json:"_id" binding:"required"`
	CreateClientRequest
}

// BookClientRequest is the booking form submission. At least one service is required.
type BookClientRequest struct {
	ClientFieldsRequest
	Services []ServiceInputRequest `json:"services" binding:"required,min=1,dive"`
}

// PatchClientRequest edits individual client fields. Omitted fields are left untouched.
type PatchClientRequest struct {
	Name          *string           `json:"name"`
	PhoneNumber   *string           `json:"phoneNumber" binding:"omitempty,phone8"`
	Responsable   *string           `json:"responsable" binding:"omitempty,personname"`
	PaymentMethod *string           `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	DateOfBooking *time.Time        `json:"dateOfBooking"`
	Services      *[]ServiceRequest `json:"services" binding:"omitempty,dive"`
}

// SettleServiceRequest records how the remaining balance of a service was paid.
type SettleServiceRequest struct {
	Method string `json:"method" binding:"required,paymentmethod"`
}

// DeleteByIDRequest is the body of DELETE /clients.
type DeleteByIDRequest struct {
	ID string `json:"id" binding:"required"`
}

// DeleteResponse reports how many records were removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ServiceResponse is a booked service with its derived status.
type ServiceResponse struct {
	Name                   string               `json:"name"`
	Price                  decimal.Decimal      `json:"price"`
	UpfrontPayment         decimal.Decimal      `json:"upfrontPayment"`
	RemainingPayment       decimal.Decimal      `json:"remainingPayment"`
	StartDate              time.Time            `json:"startDate"`
	EndDate                time.Time            `json:"endDate"`
	UpfrontPaymentMethod   string               `json:"upfrontPaymentMethod,omitempty"`
	RemainingPaymentMethod string               `json:"remainingPaymentMethod,omitempty"`
	Status                 domain.PaymentStatus `json:"status"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID         string            `json:"_id"`
	Name             string            `json:"name"`
	PhoneNumber      string            `json:"phoneNumber"`
	Responsable      string            `json:"responsable"`
	Services         []ServiceResponse `json:"services"`
	PaymentMethod    string            `json:"paymentMethod"`
	DateOfBooking    time.Time         `json:"dateOfBooking"`
	TotalPrice       decimal.Decimal   `json:"totalPrice"`
	RemainingTotal   decimal.Decimal   `json:"remainingTotal"`
	OutstandingTotal decimal.Decimal   `json:"outstandingTotal"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ToFields converts the form values to their domain shape.
func (r ClientFieldsRequest) ToFields() domain.ClientFields {
	return domain.ClientFields{
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		Responsable:   r.Responsable,
		PaymentMethod: r.PaymentMethod,
		DateOfBooking: r.DateOfBooking,
	}
}

// ToDomain converts a direct API service.
func (r ServiceRequest) ToDomain() domain.Service {
	return domain.Service{
		Name:                   r.Name,
		Price:                  r.Price,
		UpfrontPayment:         r.UpfrontPayment,
		RemainingPayment:       r.Price.Sub(r.UpfrontPayment),
		StartDate:              r.StartDate,
		EndDate:                r.EndDate,
		UpfrontPaymentMethod:   r.UpfrontPaymentMethod,
		RemainingPaymentMethod: r.RemainingPaymentMethod,
	}
}

// ToServices converts a list of direct API services.
func ToServices(reqs []ServiceRequest) []domain.Service {
	services := make([]domain.Service, len(reqs))
	for i, r := range reqs {
		services[i] = r.ToDomain()
	}
	return services
}

// ToDomain converts a booking form row.
func (r ServiceInputRequest) ToDomain() domain.ServiceInput {
	return domain.ServiceInput{
		Name:                 r.Name,
		Price:                r.Price,
		UpfrontPayment:       r.UpfrontPayment,
		UpfrontPaymentMethod: r.UpfrontPaymentMethod,
		StartDate:            r.StartDate,
		DurationHours:        r.DurationHours,
	}
}

// ToPatch converts an inline edit to its domain shape.
func (r PatchClientRequest) ToPatch() domain.ClientPatch {
	patch := domain.ClientPatch{
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		Responsable:   r.Responsable,
		PaymentMethod: r.PaymentMethod,
		DateOfBooking: r.DateOfBooking,
	}
	if r.Services != nil {
		services := ToServices(*r.Services)
		patch.Services = &services
	}
	return patch
}

// ToServiceResponse converts a domain.Service, deriving its status.
func ToServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Name:                   s.Name,
		Price:                  s.Price,
		UpfrontPayment:         s.UpfrontPayment,
		RemainingPayment:       s.RemainingPayment,
		StartDate:              s.StartDate,
		EndDate:                s.EndDate,
		UpfrontPaymentMethod:   s.UpfrontPaymentMethod,
		RemainingPaymentMethod: s.RemainingPaymentMethod,
		Status:                 s.Status(),
	}
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	services := make([]ServiceResponse, len(c.Services))
	for i, s := range c.Services {
		services[i] = ToServiceResponse(s)
	}
	return ClientResponse{
		ClientID:         c.ClientID,
		Name:             c.Name,
		PhoneNumber:      c.PhoneNumber,
		Responsable:      c.Responsable,
		Services:         services,
		PaymentMethod:    c.PaymentMethod,
		DateOfBooking:    c.DateOfBooking,
		TotalPrice:       c.TotalPrice,
		RemainingTotal:   c.RemainingTotal,
		OutstandingTotal: c.OutstandingTotal(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
