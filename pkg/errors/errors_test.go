package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Clone(ErrParse, "bad from time"))
	got := FromError(wrapped)
	assert.Equal(t, ErrParse.Code, got.Code)
	assert.Equal(t, "bad from time", got.Message)
	assert.Equal(t, http.StatusBadRequest, got.Status)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	got := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, FromError(nil))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(errors.New("redis: nil"), ErrCacheMiss.Code, ErrCacheMiss.Status, "miss")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NotErrorIs(t, err, ErrInternal)
}
