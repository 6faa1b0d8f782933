package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedAddress struct {
	City       string `validate:"required"`
	PostalCode string `validate:"required"`
}

type checkoutPayload struct {
	PaymentMethod  string        `validate:"required"`
	BillingAddress nestedAddress
}

func recordValidationError(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationError(c, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestValidationErrorMapsNestedFields(t *testing.T) {
	err := validator.New().Struct(checkoutPayload{})
	require.Error(t, err)

	w, env := recordValidationError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "payment_method")
	assert.Contains(t, env.Errors, "billing_address.city")
	assert.Contains(t, env.Errors, "billing_address.postal_code")
	assert.Equal(t, []string{"This field is required"}, env.Errors["payment_method"])
}

func TestValidationErrorNonValidatorFallback(t *testing.T) {
	w, env := recordValidationError(t, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"unexpected EOF"}, env.Errors["body"])
}
