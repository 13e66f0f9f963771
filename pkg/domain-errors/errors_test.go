package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("keeps cause reachable", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := Wrap(cause, CodeNotFound, "claim file missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, HasCode(err, CodeNotFound))
		assert.Equal(t, "claim file missing: disk gone", err.Error())
		assert.Equal(t, "claim file missing", MessageOf(err))
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"plain error defaults to internal", errors.New("boom"), CodeInternal},
		{"coded error", New(CodeValidation, "bad amount"), CodeValidation},
		{"fmt-wrapped coded error", fmt.Errorf("decode: %w", New(CodeBadRequest, "bad json")), CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is(New(CodeBadRequest, "x")))
	assert.False(t, Is(errors.New("x")))
	assert.False(t, HasCode(errors.New("x"), CodeInternal))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(CodeTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Code("unknown")))
}
