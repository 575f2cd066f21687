package pager

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnvDefaultsToLess(t *testing.T) {
	p := FromEnv(env(nil))
	require.Equal(t, Pager{Program: "less", Args: []string{"--quit-if-one-screen"}, Kind: KindLess}, p)

	p = FromEnv(env(map[string]string{"LESS": "-R"}))
	require.Empty(t, p.Args)
}

func TestFromEnvPrefersMDPager(t *testing.T) {
	p := FromEnv(env(map[string]string{"MD_PAGER": "bat --style 'grid,numbers'", "PAGER": "more"}))
	require.Equal(t, "bat", p.Program)
	require.Equal(t, []string{"--style", "grid,numbers"}, p.Args)
	require.Equal(t, KindBat, p.Kind)
	require.Equal(t, 10, p.DecorationWidth())

	p = FromEnv(env(map[string]string{"PAGER": "/usr/bin/more"}))
	require.Equal(t, KindMore, p.Kind)
	require.False(t, p.Hyperlinks())
}

func TestFromEnvEmptyDisables(t *testing.T) {
	p := FromEnv(env(map[string]string{"PAGER": ""}))
	require.True(t, p.Disabled())
	proc, err := p.Start("x", nil, nil)
	require.NoError(t, err)
	require.Nil(t, proc)
}

func TestFromEnvSkipsUnparsable(t *testing.T) {
	p := FromEnv(env(map[string]string{"MD_PAGER": `less "unterminated`, "PAGER": "most"}))
	require.Equal(t, KindMost, p.Kind)
}

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		"less":           KindLess,
		"/usr/bin/less":  KindLess,
		"more":           KindMore,
		"most":           KindMost,
		"bat":            KindBat,
		"batcat":         KindBat,
		"C:/bin/bat.exe": KindBat,
		"cat":            KindOther,
	}
	for program, want := range tests {
		require.Equal(t, want, kindOf(program), program)
	}
}

func TestArgv(t *testing.T) {
	less := Pager{Program: "less", Args: []string{"-S"}, Kind: KindLess}
	require.Equal(t, []string{"-S", "--RAW-CONTROL-CHARS"}, less.Argv("README.md"))

	bat := Pager{Program: "bat", Kind: KindBat}
	require.Equal(t, []string{"--language", "txt", "--file-name", "README.md"}, bat.Argv("README.md"))

	other := Pager{Program: "cat", Kind: KindOther}
	require.Empty(t, other.Argv("README.md"))
}

func TestLessEnv(t *testing.T) {
	const tail = ` ?ltline %lt?L/%L.:byte %bB?s/%s..?e (END):?pB %pB\%.. (press h for help or q to quit)$`
	require.Equal(t, `-PsREADME\.md`+tail, LessEnv("", "README.md"))
	require.Equal(t, `-R -Psa\?b\:c\%\\`+tail, LessEnv("-R", `a$b:c%\`))
}

func TestModeEnabled(t *testing.T) {
	require.True(t, ModeAuto.Enabled(true, "xterm-256color"))
	require.False(t, ModeAuto.Enabled(true, "dumb"))
	require.False(t, ModeAuto.Enabled(true, ""))
	require.False(t, ModeAuto.Enabled(false, "xterm"))
	require.True(t, ModeAlways.Enabled(false, ""))
	require.False(t, ModeNever.Enabled(true, "xterm"))

	m, err := ParseMode("never")
	require.NoError(t, err)
	require.Equal(t, ModeNever, m)
	_, err = ParseMode("sometimes")
	require.Error(t, err)
}

func TestStartMissingProgramFallsBack(t *testing.T) {
	p := Pager{Program: "md-no-such-pager-for-tests"}
	proc, err := p.Start("x", nil, nil)
	require.NoError(t, err)
	require.Nil(t, proc)
}

func TestStartPipesInput(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	var out bytes.Buffer
	proc, err := Pager{Program: "cat"}.Start("x", &out, nil)
	require.NoError(t, err)
	require.NotNil(t, proc)
	_, err = proc.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, proc.Close())
	require.Equal(t, "hello\n", out.String())
}

func TestWindowTitle(t *testing.T) {
	require.Equal(t, "\x1b]0;md README.md\x1b\\", WindowTitle("README.md"))
}
