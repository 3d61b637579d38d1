package models

// Expense is the stored expense document.
type Expense struct {
	ExpenseID     string  `json:"_id" bson:"_id" db:"expense_id"`
	Name          string  `json:"name" bson:"name" db:"name"`
	Price         float64 `json:"price" bson:"price" db:"price"`
	Responsable   string  `json:"responsable" bson:"responsable" db:"responsable"`
	Date          string  `json:"date" bson:"date" db:"date"`
	PaymentMethod string  `json:"paymentMethod" bson:"paymentMethod" db:"payment_method"`
	AuditFields   `bson:",inline"`
}
