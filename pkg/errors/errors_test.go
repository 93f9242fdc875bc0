package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapCarriesKind(t *testing.T) {
	storeErr := FromKind(KindConflict, errors.New("duplicate key"))
	wrapped := Wrap(fmt.Errorf("create enrollment: %w", storeErr), ErrInternal.Code, ErrInternal.Status, "Failed to add enrollment")

	assert.Equal(t, KindConflict, wrapped.Kind)
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, "Failed to add enrollment", FromError(wrapped).Message)
	assert.Equal(t, http.StatusInternalServerError, FromError(wrapped).Status)
}

func TestKindOfUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "unknown", KindOf(errors.New("boom")).String())
	assert.Equal(t, "connection_failure", KindConnectionFailure.String())
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	err := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Nil(t, FromError(nil))
}

func TestClone(t *testing.T) {
	clone := Clone(ErrValidation, "Invalid student payload")
	assert.Equal(t, "Invalid student payload", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Nil(t, Clone(nil, "x"))
}
