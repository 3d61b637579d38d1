package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddOrModifyService validates input and returns a new service list with the entry appended,
// or replaced in place when editIndex is set. The current slice is never modified.
//
// Duplicate names are rejected on add only; an edit may keep (or take) any catalog name.
// An edit keeps the settlement method of the replaced entry unless its price or upfront
// amount changes, in which case the balance is new and must be settled again.
func AddOrModifyService(current []domain.Service, input domain.ServiceInput, editIndex *int) ([]domain.Service, error) {
	svc, err := newService(input)
	if err != nil {
		return nil, err
	}

	if editIndex != nil {
		idx := *editIndex
		if idx < 0 || idx >= len(current) {
			return nil, fmt.Errorf("%w: service index %d out of range", apperrors.ErrValidation, idx)
		}
		prev := current[idx]
		if prev.Price.Equal(svc.Price) && prev.UpfrontPayment.Equal(svc.UpfrontPayment) {
			svc.RemainingPaymentMethod = prev.RemainingPaymentMethod
		}
		next := cloneServices(current)
		next[idx] = svc
		return next, nil
	}

	for _, existing := range current {
		if existing.Name == svc.Name {
			return nil, fmt.Errorf("%w: service %q is already booked for this client", apperrors.ErrDuplicate, svc.Name)
		}
	}

	next := make([]domain.Service, 0, len(current)+1)
	next = append(next, current...)
	return append(next, svc), nil
}

// RemoveService drops the entry at index. Client totals must be recomputed by the caller.
func RemoveService(current []domain.Service, index int) ([]domain.Service, error) {
	if index < 0 || index >= len(current) {
		return nil, fmt.Errorf("%w: service index %d out of range", apperrors.ErrValidation, index)
	}
	next := make([]domain.Service, 0, len(current)-1)
	next = append(next, current[:index]...)
	return append(next, current[index+1:]...), nil
}

// MarkSettled records the method used to pay the remaining balance of the named service.
// RemainingPayment keeps its numeric value; readers see the service as Paid through Status.
func MarkSettled(services []domain.Service, name string, method string) ([]domain.Service, error) {
	for i, s := range services {
		if s.Name == name {
			return MarkSettledAt(services, i, method)
		}
	}
	if !domain.IsKnownPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
	}
	return nil, fmt.Errorf("%w: service %q not booked for this client", apperrors.ErrNotFound, name)
}

// MarkSettledAt is MarkSettled for the entry at index, so same-named services stay distinct.
func MarkSettledAt(services []domain.Service, index int, method string) ([]domain.Service, error) {
	if !domain.IsKnownPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
	}
	if index < 0 || index >= len(services) {
		return nil, fmt.Errorf("%w: service index %d out of range", apperrors.ErrValidation, index)
	}
	next := cloneServices(services)
	next[index].RemainingPaymentMethod = method
	return next, nil
}

func newService(input domain.ServiceInput) (domain.Service, error) {
	if !domain.IsKnownService(input.Name) {
		return domain.Service{}, fmt.Errorf("%w: unknown service %q", apperrors.ErrValidation, input.Name)
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return domain.Service{}, fmt.Errorf("%w: invalid amount", apperrors.ErrValidation)
	}
	if input.UpfrontPayment.IsNegative() {
		return domain.Service{}, fmt.Errorf("%w: invalid upfront amount", apperrors.ErrValidation)
	}
	if input.UpfrontPayment.GreaterThan(input.Price) {
		return domain.Service{}, fmt.Errorf("%w: upfront exceeds total", apperrors.ErrValidation)
	}
	if input.DurationHours < 1 {
		return domain.Service{}, fmt.Errorf("%w: duration must be at least 1 hour", apperrors.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return domain.Service{}, fmt.Errorf("%w: start date required", apperrors.ErrValidation)
	}
	if input.UpfrontPayment.GreaterThan(decimal.Zero) && input.UpfrontPaymentMethod == "" {
		return domain.Service{}, fmt.Errorf("%w: upfront payment method required", apperrors.ErrValidation)
	}
	if input.UpfrontPaymentMethod != "" && !domain.IsKnownPaymentMethod(input.UpfrontPaymentMethod) {
		return domain.Service{}, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, input.UpfrontPaymentMethod)
	}

	return domain.Service{
		Name:                 input.Name,
		Price:                input.Price,
		UpfrontPayment:       input.UpfrontPayment,
		RemainingPayment:     input.Price.Sub(input.UpfrontPayment),
		StartDate:            input.StartDate,
		EndDate:              input.StartDate.Add(time.Duration(input.DurationHours) * time.Hour),
		UpfrontPaymentMethod: input.UpfrontPaymentMethod,
	}, nil
}

func cloneServices(services []domain.Service) []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)
	return out
}
