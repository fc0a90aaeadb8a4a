package artmark_test

import (
	"errors"
	"testing"

	"github.com/artmark/artmark"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := artmark.Errorf(artmark.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, artmark.ENOTFOUND, artmark.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", artmark.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, artmark.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, artmark.EINTERNAL, artmark.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, artmark.ErrorMessage(nil))
}
