package models

// AuditFields contains standard audit information. Timestamps are RFC3339 strings.
type AuditFields struct {
	CreatedAt string `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
