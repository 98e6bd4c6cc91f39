package dataset

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpected(t *testing.T) {
	assert.True(t, IsExpected(ErrNoData))
	assert.True(t, IsExpected(fmt.Errorf("computing max: %w", ErrNoNumeric)))
	assert.True(t, IsExpected(&LoadError{Path: "x.xlsx", Err: os.ErrNotExist}))
	assert.True(t, IsExpected(&MissingColumnError{Column: "Region"}))

	assert.False(t, IsExpected(nil))
	assert.False(t, IsExpected(errors.New("disk on fire")))
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := &LoadError{Path: "sales.xlsx", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "sales.xlsx")
}
