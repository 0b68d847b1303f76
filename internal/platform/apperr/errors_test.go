package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation_MatchesSentinel(t *testing.T) {
	err := Validation("address", "address is required")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Equal(t, "address: address is required", err.Error())

	wrapped := fmt.Errorf("create pet: %w", err)
	var ve *ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "address", ve.Field)
}

func TestStorage_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("pet", "create", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "create pet failed: connection reset", err.Error())
	assert.Nil(t, Storage("pet", "create", nil))
}

func TestStorage_DoesNotDoubleWrap(t *testing.T) {
	first := Storage("address", "update", errors.New("x"))
	second := Storage("transaction", "commit", first)
	assert.Same(t, first, second)
}

func TestQuery_MatchesSentinel(t *testing.T) {
	cause := errors.New("timeout")
	err := Query("pet", cause)
	assert.ErrorIs(t, err, ErrQuery)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Nil(t, Query("pet", nil))
}
