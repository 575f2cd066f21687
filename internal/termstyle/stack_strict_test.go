//go:build mddebug

package termstyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPopEmptyPanics(t *testing.T) {
	s := NewStack(New())
	require.Panics(t, s.Pop)
}
