package textwrap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, b *breaker, inputs ...string) []fragment {
	t.Helper()
	var got []fragment
	for _, in := range inputs {
		require.NoError(t, b.split(in, func(f fragment) error {
			got = append(got, f)
			return nil
		}))
	}
	return got
}

func TestBreakerSplitsAtSpaces(t *testing.T) {
	var b breaker
	got := collect(t, &b, "foo bar")
	require.Equal(t, []fragment{{"foo ", allowed, false}, {"bar", noBreak, false}}, got)
	require.Equal(t, "bar", b.carry)
}

func TestBreakerCarriesWordAcrossCalls(t *testing.T) {
	var b breaker
	got := collect(t, &b, "fo", "o bar")
	require.Equal(t, []fragment{{"fo", noBreak, false}, {"o ", allowed, false}, {"bar", noBreak, false}}, got)
}

func TestBreakerMandatory(t *testing.T) {
	var b breaker
	got := collect(t, &b, "foo\nbar")
	require.Equal(t, []fragment{{"foo", mandatory, false}, {"bar", noBreak, false}}, got)

	b.reset()
	got = collect(t, &b, "foo\n")
	require.Equal(t, []fragment{{"foo", mandatory, false}}, got)
	require.Empty(t, b.carry)
}

func TestBreakerBreakInsideCarry(t *testing.T) {
	var b breaker
	got := collect(t, &b, "foo ", "bar")
	require.Equal(t, []fragment{{"foo ", noBreak, false}, {"", allowed, true}, {"bar", noBreak, false}}, got)
}
