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

func validFields() domain.ClientFields {
	return domain.ClientFields{
		Name:          "Groupe Atlas",
		PhoneNumber:   "23456789",
		Responsable:   "Sami Trabelsi",
		PaymentMethod: "Cash",
		DateOfBooking: start,
	}
}

func TestBuildClient_Totals(t *testing.T) {
	services := []domain.Service{
		{Name: "Camping", Price: decimal.NewFromInt(500), UpfrontPayment: decimal.NewFromInt(500)},
		{Name: "Kayak", Price: decimal.NewFromInt(1500), UpfrontPayment: decimal.NewFromInt(1200)},
	}
	now := time.Now()

	client, err := BuildClient(validFields(), services, nil, BuildOptions{RequireServices: true}, now)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2000).Equal(client.TotalPrice))
	assert.True(t, decimal.NewFromInt(300).Equal(client.RemainingTotal))
	assert.True(t, client.Services[0].RemainingPayment.IsZero())
	assert.Equal(t, now, client.CreatedAt)
	assert.Equal(t, now, client.UpdatedAt)
}

func TestBuildClient_Idempotent(t *testing.T) {
	services, err := AddOrModifyService(nil, serviceInput("Camping", 1000, 400, "Cash"), nil)
	require.NoError(t, err)

	first, err := BuildClient(validFields(), services, nil, BuildOptions{}, time.Now())
	require.NoError(t, err)
	second, err := BuildClient(first.Fields(), first.Services, first, BuildOptions{}, time.Now().Add(time.Minute))
	require.NoError(t, err)

	assert.True(t, first.TotalPrice.Equal(second.TotalPrice))
	assert.True(t, first.RemainingTotal.Equal(second.RemainingTotal))
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestBuildClient_PreservesIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	original := &domain.Client{ClientID: "c-1", AuditFields: domain.AuditFields{CreatedAt: created, UpdatedAt: created}}

	client, err := BuildClient(validFields(), nil, original, BuildOptions{}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "c-1", client.ClientID)
	assert.Equal(t, created, client.CreatedAt)
	assert.True(t, client.UpdatedAt.After(created))
}

func TestBuildClient_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *domain.ClientFields)
		opts   BuildOptions
		errMsg string
	}{
		{name: "missing name", mutate: func(f *domain.ClientFields) { f.Name = " " }, errMsg: "name is required"},
		{name: "bad responsable", mutate: func(f *domain.ClientFields) { f.Responsable = "Sami 2" }, errMsg: "responsable"},
		{name: "phone starting with 1", mutate: func(f *domain.ClientFields) { f.PhoneNumber = "123456789" }, errMsg: "phone number"},
		{name: "short phone", mutate: func(f *domain.ClientFields) { f.PhoneNumber = "2345678" }, errMsg: "phone number"},
		{name: "no payment method", mutate: func(f *domain.ClientFields) { f.PaymentMethod = "" }, errMsg: "payment method"},
		{name: "no booking date", mutate: func(f *domain.ClientFields) { f.DateOfBooking = time.Time{} }, errMsg: "date of booking"},
		{name: "booking flow without services", mutate: func(f *domain.ClientFields) {}, opts: BuildOptions{RequireServices: true}, errMsg: "at least one service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)
			client, err := BuildClient(fields, nil, nil, tt.opts, time.Now())
			require.Error(t, err)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestBuildClient_DirectAPIAllowsNoServices(t *testing.T) {
	client, err := BuildClient(validFields(), nil, nil, BuildOptions{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, client.Services)
	assert.True(t, client.TotalPrice.IsZero())
	assert.True(t, client.RemainingTotal.IsZero())
}

func TestBuildClient_RejectsInconsistentService(t *testing.T) {
	services := []domain.Service{{Name: "Camping", Price: decimal.NewFromInt(100), UpfrontPayment: decimal.NewFromInt(200)}}
	_, err := BuildClient(validFields(), services, nil, BuildOptions{}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upfront exceeds total")
}

func TestApplyPatch(t *testing.T) {
	services, _ := AddOrModifyService(nil, serviceInput("Camping", 1000, 400, "Cash"), nil)
	original, err := BuildClient(validFields(), services, nil, BuildOptions{}, time.Now())
	require.NoError(t, err)
	original.ClientID = "c-9"

	newPhone := "34567890"
	emptied := []domain.Service{}
	patched, err := ApplyPatch(*original, domain.ClientPatch{PhoneNumber: &newPhone, Services: &emptied}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "c-9", patched.ClientID)
	assert.Equal(t, newPhone, patched.PhoneNumber)
	assert.Equal(t, original.Name, patched.Name)
	assert.True(t, patched.TotalPrice.IsZero())

	badPhone := "999"
	_, err = ApplyPatch(*original, domain.ClientPatch{PhoneNumber: &badPhone}, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateExpense(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	fields := domain.ExpenseFields{
		Name:          "Gaz",
		Price:         decimal.NewFromInt(200),
		Responsable:   "Sami",
		Date:          date,
		PaymentMethod: "Cash",
	}

	expense, err := ValidateExpense(fields, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Gaz", expense.Name)

	zero := fields
	zero.Price = decimal.Zero
	_, err = ValidateExpense(zero, nil, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	noMethod := fields
	noMethod.PaymentMethod = ""
	_, err = ValidateExpense(noMethod, nil, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	noDate := fields
	noDate.Date = time.Time{}
	_, err = ValidateExpense(noDate, nil, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
