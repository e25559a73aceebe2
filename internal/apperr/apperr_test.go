package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := NotFound(ReasonBook, "book with ISBN %q not found", "123")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, `book with ISBN "123" not found`, err.Error())
}

func TestError_WrappedChain(t *testing.T) {
	base := PolicyViolation(ReasonLoanLimit, "limit reached")
	wrapped := fmt.Errorf("checkout: %w", base)

	assert.True(t, errors.Is(wrapped, ErrPolicyViolation))
	assert.Equal(t, KindPolicyViolation, KindOf(wrapped))
	assert.Equal(t, ReasonLoanLimit, ReasonOf(wrapped))
}

func TestKindOf_Unknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "", ReasonOf(errors.New("boom")))
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
}

func TestAlreadyClosed_UsesLoanReason(t *testing.T) {
	err := AlreadyClosed("loan %d already closed", 7)
	assert.True(t, errors.Is(err, ErrAlreadyClosed))
	assert.Equal(t, ReasonLoan, err.Reason)
	assert.Equal(t, "ALREADY_CLOSED", err.Kind.String())
}
