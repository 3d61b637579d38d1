package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildOptions selects between the two creation paths.
type BuildOptions struct {
	// RequireServices enforces at least one service (booking form). The direct API leaves it false.
	RequireServices bool
}

// BuildClient validates fields and folds services into a persisted-shape Client.
// Totals are recomputed from scratch. When original is given its id and CreatedAt are kept.
func BuildClient(fields domain.ClientFields, services []domain.Service, original *domain.Client, opts BuildOptions, now time.Time) (*domain.Client, error) {
	if err := validateClientFields(fields); err != nil {
		return nil, err
	}
	if opts.RequireServices && len(services) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", apperrors.ErrValidation)
	}

	normalized := make([]domain.Service, len(services))
	for i, s := range services {
		n, err := normalizeService(s)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", i, err)
		}
		normalized[i] = n
	}

	client := &domain.Client{
		Name:          strings.TrimSpace(fields.Name),
		PhoneNumber:   fields.PhoneNumber,
		Responsable:   strings.TrimSpace(fields.Responsable),
		Services:      normalized,
		PaymentMethod: fields.PaymentMethod,
		DateOfBooking: fields.DateOfBooking,
	}
	if original != nil {
		client.ClientID = original.ClientID
		client.CreatedAt = original.CreatedAt
	}
	client.TotalPrice, client.RemainingTotal = ComputeTotals(normalized)
	client.Touch(now)
	return client, nil
}

// ApplyPatch merges an inline edit into an existing client and rebuilds it.
func ApplyPatch(original domain.Client, patch domain.ClientPatch, now time.Time) (*domain.Client, error) {
	fields := original.Fields()
	if patch.Name != nil {
		fields.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		fields.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Responsable != nil {
		fields.Responsable = *patch.Responsable
	}
	if patch.PaymentMethod != nil {
		fields.PaymentMethod = *patch.PaymentMethod
	}
	if patch.DateOfBooking != nil {
		fields.DateOfBooking = *patch.DateOfBooking
	}
	services := original.Services
	if patch.Services != nil {
		services = *patch.Services
	}
	return BuildClient(fields, services, &original, BuildOptions{}, now)
}

// ComputeTotals returns the sum of prices and the sum of remaining payments.
func ComputeTotals(services []domain.Service) (decimal.Decimal, decimal.Decimal) {
	total := decimal.Zero
	remaining := decimal.Zero
	for _, s := range services {
		total = total.Add(s.Price)
		remaining = remaining.Add(s.RemainingPayment)
	}
	return total, remaining
}

func validateClientFields(fields domain.ClientFields) error {
	if strings.TrimSpace(fields.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !ValidatePersonName(fields.Responsable) {
		return fmt.Errorf("%w: responsable must contain letters and spaces only", apperrors.ErrValidation)
	}
	if !ValidatePhone(fields.PhoneNumber) {
		return fmt.Errorf("%w: phone number must be 8 digits starting with 2, 3 or 4", apperrors.ErrValidation)
	}
	if !domain.IsKnownPaymentMethod(fields.PaymentMethod) {
		return fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}
	if fields.DateOfBooking.IsZero() {
		return fmt.Errorf("%w: date of booking is required", apperrors.ErrValidation)
	}
	return nil
}

// normalizeService re-derives RemainingPayment for services that did not go through
// AddOrModifyService (direct API, full replace).
func normalizeService(s domain.Service) (domain.Service, error) {
	if s.Name == "" {
		return s, fmt.Errorf("%w: service name is required", apperrors.ErrValidation)
	}
	if s.Price.IsNegative() || s.UpfrontPayment.IsNegative() {
		return s, fmt.Errorf("%w: invalid amount", apperrors.ErrValidation)
	}
	if s.UpfrontPayment.GreaterThan(s.Price) {
		return s, fmt.Errorf("%w: upfront exceeds total", apperrors.ErrValidation)
	}
	s.RemainingPayment = s.Price.Sub(s.UpfrontPayment)
	return s, nil
}
