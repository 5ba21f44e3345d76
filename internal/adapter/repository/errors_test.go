package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "gomarket/pkg/errors"
)

func TestMapStoreError(t *testing.T) {
	cases := []struct {
		name string
		code codes.Code
		want string
	}{
		{"not found", codes.NotFound, "NOT_FOUND"},
		{"unavailable", codes.Unavailable, "STORE_UNAVAILABLE"},
		{"deadline", codes.DeadlineExceeded, "STORE_UNAVAILABLE"},
		{"exhausted", codes.ResourceExhausted, "STORE_UNAVAILABLE"},
		{"unauthenticated", codes.Unauthenticated, "UNAUTHORIZED"},
		{"permission", codes.PermissionDenied, "UNAUTHORIZED"},
		{"other", codes.Aborted, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapStoreError("Product", status.Error(tc.code, "backend failure"))
			assert.True(t, apperrors.Is(err, tc.want), "got %v", err)
		})
	}
}
