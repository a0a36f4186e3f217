package validator

import (
	"strings"
	"testing"

	domainerrors "foodies/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Skip     int    `query:"skip" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Name: "alice", Email: "alice@example.com", Password: "secret"}))

	err := v.Validate(&signup{Email: "nope", Password: "abc", Skip: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "password must be at least 6 characters")
	assert.Contains(t, appErr.Details(), "skip must be >= 0")
}

func detailsOf(t *testing.T, err error) string {
	t.Helper()

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))

	return appErr.Details()
}

type account struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,max=72,maxbytes=72"`
}

func TestValidator_NotBlank(t *testing.T) {
	v := New()

	err := v.Validate(&account{Name: "   ", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, detailsOf(t, err), "name must not be blank")
}

func TestValidator_MaxBytes(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&account{Name: "alice", Password: strings.Repeat("a", 72)}))

	// 72 runes, 144 bytes.
	err := v.Validate(&account{Name: "alice", Password: strings.Repeat("é", 72)})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, detailsOf(t, err), "password must be at most 72 bytes")
}

type line struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

type basket struct {
	Lines []line `json:"lines" validate:"required,min=1,unique=ID,dive"`
}

func TestValidator_UniqueByField(t *testing.T) {
	v := New()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, v.Validate(&basket{Lines: []line{{ID: a}, {ID: b}}}))

	err := v.Validate(&basket{Lines: []line{{ID: a}, {ID: b}, {ID: a}}})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, detailsOf(t, err), "lines must not repeat ID")

	err = v.Validate(&basket{Lines: []line{}})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, detailsOf(t, err), "lines must have at least 1 items")
}
