package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState_Advance(t *testing.T) {
	state := NewState([]string{"-a", "--", "file"})

	assert.Equal(t, -1, state.Pos())
	assert.Equal(t, "", state.CurrentArg(), "no current argument before the first Advance")
	assert.Equal(t, 3, state.Remaining())

	var seen []string
	for state.Advance() {
		seen = append(seen, state.CurrentArg())
	}

	assert.Equal(t, []string{"-a", "--", "file"}, seen)
	assert.Equal(t, 2, state.Pos())
	assert.Equal(t, 0, state.Remaining())
	assert.False(t, state.Advance(), "advancing past the end must keep failing")
	assert.Equal(t, 3, state.Len())
}

func TestDefaultState_Empty(t *testing.T) {
	state := NewState(nil)
	assert.False(t, state.Advance())
	assert.Equal(t, 0, state.Len())
	assert.Empty(t, state.Args())
}
