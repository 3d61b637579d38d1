package domain

// ServiceCatalog lists the offerings a client can book. Names are matched exactly.
var ServiceCatalog = []string{
	"Camping",
	"Bivouac",
	"Randonnée",
	"Excursion",
	"Quad",
	"Kayak",
	"Location de matériel",
	"Transport",
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{
	"Cash",
	"Carte bancaire",
	"Virement",
	"Chèque",
	"D17",
}

// IsKnownService reports whether name is part of ServiceCatalog.
func IsKnownService(name string) bool {
	return contains(ServiceCatalog, name)
}

// IsKnownPaymentMethod reports whether method is part of PaymentMethods.
func IsKnownPaymentMethod(method string) bool {
	return contains(PaymentMethods, method)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
