package mapping

import (
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelService converts a domain Service to a model Service
func ToModelService(d domain.Service) models.Service {
	return models.Service{
		Name:                   d.Name,
		Price:                  d.Price.InexactFloat64(),
		UpfrontPayment:         d.UpfrontPayment.InexactFloat64(),
		RemainingPayment:       d.RemainingPayment.InexactFloat64(),
		StartDate:              FormatTime(d.StartDate),
		EndDate:                FormatTime(d.EndDate),
		UpfrontPaymentMethod:   d.UpfrontPaymentMethod,
		RemainingPaymentMethod: d.RemainingPaymentMethod,
	}
}

// ToDomainService converts a model Service to a domain Service
func ToDomainService(m models.Service) (domain.Service, error) {
	start, err := ParseTime(m.StartDate)
	if err != nil {
		return domain.Service{}, err
	}
	end, err := ParseTime(m.EndDate)
	if err != nil {
		return domain.Service{}, err
	}
	return domain.Service{
		Name:                   m.Name,
		Price:                  decimal.NewFromFloat(m.Price),
		UpfrontPayment:         decimal.NewFromFloat(m.UpfrontPayment),
		RemainingPayment:       decimal.NewFromFloat(m.RemainingPayment),
		StartDate:              start,
		EndDate:                end,
		UpfrontPaymentMethod:   m.UpfrontPaymentMethod,
		RemainingPaymentMethod: m.RemainingPaymentMethod,
	}, nil
}

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	services := make([]models.Service, len(d.Services))
	for i, s := range d.Services {
		services[i] = ToModelService(s)
	}
	return models.Client{
		ClientID:       d.ClientID,
		Name:           d.Name,
		PhoneNumber:    d.PhoneNumber,
		Responsable:    d.Responsable,
		Services:       services,
		PaymentMethod:  d.PaymentMethod,
		DateOfBooking:  FormatTime(d.DateOfBooking),
		TotalPrice:     d.TotalPrice.InexactFloat64(),
		RemainingTotal: d.RemainingTotal.InexactFloat64(),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) (domain.Client, error) {
	services := make([]domain.Service, len(m.Services))
	for i, s := range m.Services {
		svc, err := ToDomainService(s)
		if err != nil {
			return domain.Client{}, err
		}
		services[i] = svc
	}
	booked, err := ParseTime(m.DateOfBooking)
	if err != nil {
		return domain.Client{}, err
	}
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Client{}, err
	}
	return domain.Client{
		ClientID:       m.ClientID,
		Name:           m.Name,
		PhoneNumber:    m.PhoneNumber,
		Responsable:    m.Responsable,
		Services:       services,
		PaymentMethod:  m.PaymentMethod,
		DateOfBooking:  booked,
		TotalPrice:     decimal.NewFromFloat(m.TotalPrice),
		RemainingTotal: decimal.NewFromFloat(m.RemainingTotal),
		AuditFields:    audit,
	}, nil
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) ([]domain.Client, error) {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		d, err := ToDomainClient(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
