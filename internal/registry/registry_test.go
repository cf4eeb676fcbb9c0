package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

type stubBot struct {
	name string
}

func (b *stubBot) Name() string                         { return b.name }
func (b *stubBot) Description() string                  { return "stub " + b.name }
func (b *stubBot) Reset(int64)                          {}
func (b *stubBot) Decide(*tetris.Board) core.InputFrame { return core.InputFrame{} }

func stub(name string) Factory {
	return func() Bot { return &stubBot{name: name} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", stub("test_zeta"))
	Register("test_alpha", stub("test_alpha"))

	assert.True(t, Exists("test_alpha"))
	assert.False(t, Exists("test_missing"))

	b, err := Create("test_alpha")
	require.NoError(t, err)
	assert.Equal(t, "test_alpha", b.Name())

	// every Create returns a fresh instance
	b2, err := Create("test_alpha")
	require.NoError(t, err)
	assert.NotSame(t, b, b2)

	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
		if info.Name == "test_zeta" {
			assert.Equal(t, "stub test_zeta", info.Description)
		}
	}
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "test_zeta")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test_nobody")
	assert.ErrorIs(t, err, ErrUnknownBot)
	assert.Contains(t, err.Error(), "test_nobody")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stub("test_dup"))
	assert.Panics(t, func() { Register("test_dup", stub("test_dup")) })
}
