package accounting

import (
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
)

// BookingDraft is the booking form state. Every setter returns a new draft and leaves
// the receiver untouched, so a failed edit never corrupts what was already entered.
type BookingDraft struct {
	fields   domain.ClientFields
	services []domain.Service
}

// NewBookingDraft returns an empty draft.
func NewBookingDraft() BookingDraft {
	return BookingDraft{}
}

// WithFields replaces the client-level form values.
func (d BookingDraft) WithFields(fields domain.ClientFields) BookingDraft {
	return BookingDraft{fields: fields, services: d.services}
}

// WithService appends a validated service.
func (d BookingDraft) WithService(input domain.ServiceInput) (BookingDraft, error) {
	services, err := AddOrModifyService(d.services, input, nil)
	if err != nil {
		return d, err
	}
	return BookingDraft{fields: d.fields, services: services}, nil
}

// WithServiceAt replaces the service at index.
func (d BookingDraft) WithServiceAt(index int, input domain.ServiceInput) (BookingDraft, error) {
	services, err := AddOrModifyService(d.services, input, &index)
	if err != nil {
		return d, err
	}
	return BookingDraft{fields: d.fields, services: services}, nil
}

// WithoutService removes the service at index.
func (d BookingDraft) WithoutService(index int) (BookingDraft, error) {
	services, err := RemoveService(d.services, index)
	if err != nil {
		return d, err
	}
	return BookingDraft{fields: d.fields, services: services}, nil
}

// Fields returns the client-level values entered so far.
func (d BookingDraft) Fields() domain.ClientFields {
	return d.fields
}

// Services returns a copy of the services entered so far.
func (d BookingDraft) Services() []domain.Service {
	return cloneServices(d.services)
}

// Submit builds the client through the strict booking path.
func (d BookingDraft) Submit(now time.Time) (*domain.Client, error) {
	return BuildClient(d.fields, d.services, nil, BuildOptions{RequireServices: true}, now)
}
