package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pullRequests24/internal/api/middleware"
)

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
}
