package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/models"
)

// FormatTime renders t as an RFC3339 string in UTC. The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime reads an RFC3339 string. Bare "2006-01-02" dates are accepted too; "" yields the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: FormatTime(d.CreatedAt),
		UpdatedAt: FormatTime(d.UpdatedAt),
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) (domain.AuditFields, error) {
	created, err := ParseTime(m.CreatedAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	updated, err := ParseTime(m.UpdatedAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	return domain.AuditFields{CreatedAt: created, UpdatedAt: updated}, nil
}
