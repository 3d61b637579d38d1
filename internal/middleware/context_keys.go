package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// subjectKey holds the subject of the validated access token.
	subjectKey = contextKey("subject")
)

// GetSubjectFromContext retrieves the authenticated token subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	return SubjectFromCtx(c.Request.Context())
}

// SubjectFromCtx retrieves the authenticated token subject from a standard context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
