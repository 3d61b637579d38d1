package accounting

import (
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToInvoiceView projects a client into its invoice. The total is the sum of service prices,
// not RemainingTotal.
func ToInvoiceView(client domain.Client) domain.InvoiceView {
	view := domain.InvoiceView{
		ClientName:    client.Name,
		Phone:         client.PhoneNumber,
		PaymentMethod: client.PaymentMethod,
		BookingDate:   client.DateOfBooking,
		Services:      make([]domain.InvoiceLine, len(client.Services)),
		TotalAmount:   decimal.Zero,
	}
	for i, s := range client.Services {
		view.Services[i] = domain.InvoiceLine{
			Name:             s.Name,
			StartDate:        s.StartDate,
			EndDate:          s.EndDate,
			Price:            s.Price,
			UpfrontPayment:   s.UpfrontPayment,
			RemainingPayment: s.RemainingPayment,
			Status:           s.Status(),
		}
		view.TotalAmount = view.TotalAmount.Add(s.Price)
	}
	return view
}
