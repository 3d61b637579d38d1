package dto

// CatalogResponse lists the values accepted for service names and payment methods.
type CatalogResponse struct {
	Services       []string `json:"services"`
	PaymentMethods []string `json:"paymentMethods"`
}
