package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelClient_StoresISODatesAndNumbers(t *testing.T) {
	booked := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	client := domain.Client{
		ClientID:      "c-1",
		Name:          "Groupe Atlas",
		DateOfBooking: booked,
		Services: []domain.Service{{
			Name:             "Camping",
			Price:            decimal.RequireFromString("1000.5"),
			UpfrontPayment:   decimal.NewFromInt(400),
			RemainingPayment: decimal.RequireFromString("600.5"),
			StartDate:        booked,
			EndDate:          booked.Add(24 * time.Hour),
		}},
		TotalPrice:     decimal.RequireFromString("1000.5"),
		RemainingTotal: decimal.RequireFromString("600.5"),
	}

	m := ToModelClient(client)
	assert.Equal(t, "2024-03-02T09:00:00Z", m.DateOfBooking)
	assert.Equal(t, "2024-03-03T09:00:00Z", m.Services[0].EndDate)
	assert.Equal(t, 1000.5, m.TotalPrice)
	assert.Equal(t, "", m.CreatedAt)

	back, err := ToDomainClient(m)
	require.NoError(t, err)
	assert.True(t, back.DateOfBooking.Equal(booked))
	assert.True(t, back.RemainingTotal.Equal(client.RemainingTotal))
	assert.True(t, back.CreatedAt.IsZero())
}

func TestToDomainClient_AcceptsDateOnly(t *testing.T) {
	c, err := ToDomainClient(models.Client{DateOfBooking: "2024-03-02"})
	require.NoError(t, err)
	assert.Equal(t, time.March, c.DateOfBooking.Month())

	_, err = ToDomainClient(models.Client{DateOfBooking: "02/03/2024"})
	assert.Error(t, err)
}
