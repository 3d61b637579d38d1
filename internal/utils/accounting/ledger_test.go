package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

func serviceInput(name string, price, upfront int64, method string) domain.ServiceInput {
	return domain.ServiceInput{
		Name:                 name,
		Price:                decimal.NewFromInt(price),
		UpfrontPayment:       decimal.NewFromInt(upfront),
		UpfrontPaymentMethod: method,
		StartDate:            start,
		DurationHours:        24,
	}
}

func TestAddOrModifyService_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		input  domain.ServiceInput
		errMsg string
	}{
		{name: "zero price", input: serviceInput("Camping", 0, 0, ""), errMsg: "invalid amount"},
		{name: "negative price", input: serviceInput("Camping", -10, 0, ""), errMsg: "invalid amount"},
		{name: "upfront above price", input: serviceInput("Camping", 100, 150, "Cash"), errMsg: "upfront exceeds total"},
		{name: "upfront without method", input: serviceInput("Camping", 100, 50, ""), errMsg: "upfront payment method required"},
		{name: "unknown service", input: serviceInput("Spa", 100, 0, ""), errMsg: "unknown service"},
		{name: "unknown method", input: serviceInput("Camping", 100, 50, "Bitcoin"), errMsg: "unknown payment method"},
		{
			name: "duration below one hour",
			input: func() domain.ServiceInput {
				in := serviceInput("Camping", 100, 0, "")
				in.DurationHours = 0
				return in
			}(),
			errMsg: "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := AddOrModifyService(nil, tt.input, nil)
			require.Error(t, err)
			assert.Nil(t, services)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAddOrModifyService_Add(t *testing.T) {
	current := []domain.Service{}

	services, err := AddOrModifyService(current, serviceInput("Camping", 1000, 400, "Cash"), nil)
	require.NoError(t, err)
	require.Len(t, services, 1)

	s := services[0]
	assert.True(t, decimal.NewFromInt(600).Equal(s.RemainingPayment))
	assert.Equal(t, start.Add(24*time.Hour), s.EndDate)
	assert.Equal(t, domain.PartiallyPaid, s.Status())

	services, err = AddOrModifyService(services, serviceInput("Kayak", 1000, 1000, "Cash"), nil)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.True(t, services[1].RemainingPayment.IsZero())
	assert.Equal(t, domain.Paid, services[1].Status())
	assert.Empty(t, current, "input slice must not be modified")
}

func TestAddOrModifyService_Duplicate(t *testing.T) {
	services, err := AddOrModifyService(nil, serviceInput("Camping", 100, 0, ""), nil)
	require.NoError(t, err)

	_, err = AddOrModifyService(services, serviceInput("Camping", 200, 0, ""), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAddOrModifyService_Edit(t *testing.T) {
	services, err := AddOrModifyService(nil, serviceInput("Camping", 100, 0, ""), nil)
	require.NoError(t, err)
	services, err = AddOrModifyService(services, serviceInput("Kayak", 300, 0, ""), nil)
	require.NoError(t, err)

	idx := 0
	edited, err := AddOrModifyService(services, serviceInput("Camping", 500, 100, "Virement"), &idx)
	require.NoError(t, err)
	require.Len(t, edited, 2)
	assert.True(t, decimal.NewFromInt(400).Equal(edited[0].RemainingPayment))
	assert.True(t, decimal.NewFromInt(100).Equal(services[0].Price), "original list must be untouched")

	bad := 5
	_, err = AddOrModifyService(services, serviceInput("Camping", 500, 0, ""), &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	settled, err := MarkSettledAt(edited, 0, "Cash")
	require.NoError(t, err)

	// Same amounts: the settlement survives a change of dates or name.
	moved := serviceInput("Kayak", 500, 100, "Virement")
	moved.StartDate = start.AddDate(0, 0, 3)
	kept, err := AddOrModifyService(settled, moved, &idx)
	require.NoError(t, err)
	assert.Equal(t, "Cash", kept[0].RemainingPaymentMethod)
	assert.Equal(t, domain.Paid, kept[0].Status())

	// New price: the balance changed and is open again.
	repriced, err := AddOrModifyService(settled, serviceInput("Camping", 800, 100, "Virement"), &idx)
	require.NoError(t, err)
	assert.Empty(t, repriced[0].RemainingPaymentMethod)
	assert.Equal(t, domain.PartiallyPaid, repriced[0].Status())
}

func TestRemoveService(t *testing.T) {
	services, _ := AddOrModifyService(nil, serviceInput("Camping", 100, 0, ""), nil)
	services, _ = AddOrModifyService(services, serviceInput("Kayak", 300, 0, ""), nil)

	remaining, err := RemoveService(services, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Kayak", remaining[0].Name)
	assert.Len(t, services, 2)

	_, err = RemoveService(services, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMarkSettled(t *testing.T) {
	services, _ := AddOrModifyService(nil, serviceInput("Camping", 1000, 400, "Cash"), nil)

	settled, err := MarkSettled(services, "Camping", "Virement")
	require.NoError(t, err)
	assert.Equal(t, "Virement", settled[0].RemainingPaymentMethod)
	assert.True(t, decimal.NewFromInt(600).Equal(settled[0].RemainingPayment))
	assert.Equal(t, domain.Paid, settled[0].Status())
	assert.Empty(t, services[0].RemainingPaymentMethod)

	_, err = MarkSettled(services, "Quad", "Cash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = MarkSettled(services, "Camping", "Bitcoin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMarkSettledAt_DuplicateNames(t *testing.T) {
	services, _ := AddOrModifyService(nil, serviceInput("Camping", 1000, 400, "Cash"), nil)
	services, _ = AddOrModifyService(services, serviceInput("Kayak", 300, 100, "Cash"), nil)
	idx := 1
	services, err := AddOrModifyService(services, serviceInput("Camping", 300, 100, "Cash"), &idx)
	require.NoError(t, err)

	settled, err := MarkSettledAt(services, 1, "Virement")
	require.NoError(t, err)
	assert.Empty(t, settled[0].RemainingPaymentMethod)
	assert.Equal(t, domain.PartiallyPaid, settled[0].Status())
	assert.Equal(t, "Virement", settled[1].RemainingPaymentMethod)
	assert.Equal(t, domain.Paid, settled[1].Status())

	_, err = MarkSettledAt(services, 2, "Virement")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = MarkSettledAt(services, 0, "Bitcoin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("23456789"))
	assert.True(t, ValidatePhone("41234567"))
	assert.False(t, ValidatePhone("123456789"))
	assert.False(t, ValidatePhone("2345678"))
	assert.False(t, ValidatePhone("53456789"))
	assert.False(t, ValidatePhone("2345678a"))
}

func TestValidatePersonName(t *testing.T) {
	assert.True(t, ValidatePersonName("Amine Ben Salah"))
	assert.True(t, ValidatePersonName("Hélène"))
	assert.False(t, ValidatePersonName("   "))
	assert.False(t, ValidatePersonName("R2D2"))
	assert.False(t, ValidatePersonName("Jean-Luc"))
}
