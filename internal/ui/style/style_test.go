package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rodata/internal/ui/style"
)

func TestHint(t *testing.T) {
	assert.Equal(t, style.Lime, style.Hint("light-green"))
	assert.Equal(t, style.Red, style.Hint("red"))
	assert.Equal(t, style.Slate, style.Hint("no-such-colour"))
}
