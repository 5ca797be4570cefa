package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]int{"product_id": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"product_id":3}`, w.Body.String())
}

func TestError(t *testing.T) {
	t.Run("Tagged", func(t *testing.T) {
		w := httptest.NewRecorder()
		Error(w, apperror.NotFound("product not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"product not found"}`, w.Body.String())
	})

	t.Run("Unexpected", func(t *testing.T) {
		w := httptest.NewRecorder()
		Error(w, errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "unexpected error")
	})
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"product_name"`
	}

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"product_name":"mango"}`))
		var b body
		require.NoError(t, DecodeJSON(req, &b))
		assert.Equal(t, "mango", b.Name)
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var b body
		err := DecodeJSON(req, &b)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	})
}
