package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{BadRequest("stock cannot be negative"), http.StatusBadRequest},
		{Unauthorized("wrong password"), http.StatusUnauthorized},
		{Forbidden("admin role required"), http.StatusForbidden},
		{NotFound("product with id [%d] not found", 7), http.StatusNotFound},
		{Internal("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.status, c.err.Status)
		assert.NotEmpty(t, c.err.Error())
	}

	assert.Equal(t, "product with id [7] not found", NotFound("product with id [%d] not found", 7).Detail)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("missing")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("db gone")))

	// Wrapped errors still resolve their tag.
	wrapped := fmt.Errorf("create order: %w", Forbidden("nope"))
	assert.Equal(t, http.StatusForbidden, StatusOf(wrapped))
}

func TestDetailOf(t *testing.T) {
	assert.Equal(t, "missing", DetailOf(NotFound("missing")))
	assert.Equal(t, "unexpected error: db gone", DetailOf(errors.New("db gone")))
}
