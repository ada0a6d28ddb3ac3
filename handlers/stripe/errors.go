package stripe

import (
	"fmt"
	"net/http"

	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
)

// ErrorKind classifies billing failures so callers and operators can tell
// a retryable provider hiccup from a half-applied store write.
type ErrorKind string

const (
	ErrAuthentication    ErrorKind = "authentication"
	ErrValidation        ErrorKind = "validation"
	ErrNotFound          ErrorKind = "not_found"
	ErrPaymentIncomplete ErrorKind = "payment_incomplete"
	ErrPaymentProvider   ErrorKind = "payment_provider"
	ErrIntegrity         ErrorKind = "integrity"
	ErrPersistence       ErrorKind = "persistence"
)

type BillingError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *BillingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func newBillingError(kind ErrorKind, message string) *BillingError {
	return &BillingError{Kind: kind, Message: message}
}

func wrapBillingError(kind ErrorKind, message string, err error) *BillingError {
	return &BillingError{Kind: kind, Message: message, Err: err}
}

// respondError reports any billing failure as a flat 400 {error} body.
// Retrying is the caller's job; every operation is safe to re-invoke.
func respondError(c *gin.Context, userID interface{}, berr *BillingError) {
	utils.LogErrorWithUser(userID, berr.Err, berr.Message)
	c.JSON(http.StatusBadRequest, gin.H{"error": berr.Message})
}
