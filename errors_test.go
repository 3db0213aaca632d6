package qtdoc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := qtdoc.Errorf(qtdoc.ENOTFOUND, "page %q not found", "qstring.html")

	assert.Equal(t, qtdoc.ENOTFOUND, qtdoc.ErrorCode(err))
	assert.Equal(t, "page \"qstring.html\" not found", qtdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qtdoc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, qtdoc.EINTERNAL, qtdoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qtdoc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", qtdoc.ErrorMessage(errors.New("boom")))
}
