package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/fnbridge/fnbridge/internal/errors"
)

// AssertErrorCode checks if the error carries a specific bridge error code.
func AssertErrorCode(t *testing.T, err error, expectedCode string) bool {
	t.Helper()
	code := apperrors.GetCode(err)
	if code != expectedCode {
		return assert.Fail(t, "Error code mismatch", "Expected error code %q, got %q", expectedCode, code)
	}
	return true
}
