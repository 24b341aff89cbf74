package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zatiq-tech/commission-dashboard/internal/lib/sl"
)

func TestErr_ФормируетАтрибутОшибки(t *testing.T) {
	attr := sl.Err(errors.New("upstream down"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("upstream down"), attr.Value)
}

func TestErr_ПаникуетНаNil(t *testing.T) {
	assert.Panics(t, func() {
		_ = sl.Err(nil)
	})
}
