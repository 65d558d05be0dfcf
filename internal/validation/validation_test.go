package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "varmepumpe/internal/errors"
)

type sample struct {
	Email      string `json:"email" validate:"omitempty,email"`
	OrgNumber  string `json:"orgNumber" validate:"required,orgnr"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
	Password   string `json:"password" validate:"required,min=6"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sample{OrgNumber: "123456789", PostalCode: "5003", Password: "secret"})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Email: "not-mail", OrgNumber: "12345678", PostalCode: "50031", Password: "123"})
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be exactly 9 digits", verr.Fields["orgNumber"])
	assert.Equal(t, "must be exactly 4 digits", verr.Fields["postalCode"])
	assert.Equal(t, "must be at least 6 characters", verr.Fields["password"])
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsOrgNumber("987654321"))
	assert.False(t, IsOrgNumber("98765432a"))
	assert.True(t, IsPostalCode("0150"))
	assert.False(t, IsPostalCode("150"))
}
