package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedAt is fixed at first save, UpdatedAt is refreshed on every save.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch refreshes UpdatedAt and sets CreatedAt on first save.
func (a *AuditFields) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}
