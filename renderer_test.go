package argparser

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/argparser/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerminal bool

func (f fakeTerminal) IsTerminal(fd int) bool {
	return bool(f)
}

type fdBuffer struct {
	bytes.Buffer
}

func (b *fdBuffer) Fd() uintptr {
	return 1
}

type staticRenderer string

func (s staticRenderer) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

func newHelpParser(t *testing.T, configs ...ConfigureParserFunc) (*Parser, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	p, err := NewParserWith(append([]ConfigureParserFunc{
		WithProgram("demo"),
		WithDescription("print a line"),
		WithUsage("-l LINE\n--lines LINE..."),
		WithLongDescription("Long text."),
		WithOutput(out),
		WithEnvResolver(env.MapResolver{"TERM": "xterm"}),
		WithColour(ColourNever),
		WithOption(NewOption(WithAlternatives("-h", "-?", "--help"), WithHelp("Print this help"))),
		WithOption(NewOption(WithAlternatives("--hello"), WithHelp("Say hello\nto the world"))),
		WithOption(NewArgumentless("++hidden")),
		WithOption(NewOption(WithAlternatives("-l", "--line"), WithArity(Argumented), WithArgument("LINE"), WithHelp("Print LINE"))),
		WithOption(NewOption(WithAlternatives("--l", "--lines"), WithArity(Variadic), WithArgument("LINE"), WithHelp("Print LINEs"))),
	}, configs...)...)
	require.NoError(t, err)

	return p, out
}

func TestDefaultRenderer_Render(t *testing.T) {
	p, out := newHelpParser(t)
	require.NoError(t, p.Help())

	want := strings.Join([]string{
		"demo — print a line",
		"",
		"Long text.",
		"",
		"USAGE:\t-l LINE",
		"    or\t--lines LINE...",
		"",
		"SYNOPSIS:",
		"    -h   --help" + strings.Repeat(" ", 13) + "Print this help",
		"         --hello" + strings.Repeat(" ", 12) + "Say hello",
		strings.Repeat(" ", 28) + "to the world",
		"    -l   --line LINE" + strings.Repeat(" ", 8) + "Print LINE",
		"    --l  --lines [LINE...]" + strings.Repeat(" ", 2) + "Print LINEs",
		"",
		"",
	}, "\n")

	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRenderer_Minimal(t *testing.T) {
	out := &bytes.Buffer{}
	p, err := NewParserWith(
		WithProgram("demo"),
		WithDescription("d"),
		WithEnvResolver(env.MapResolver{"TERM": "linux"}),
		WithColour(ColourNever),
		WithOption(NewArgumentless("++hidden")),
	)
	require.NoError(t, err)
	require.NoError(t, p.WriteHelp(out))

	want := "demo - d\n\n\nSYNOPSIS:\n\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRenderer_SingleSpellings(t *testing.T) {
	out := &bytes.Buffer{}
	p, err := NewParserWith(
		WithProgram("demo"),
		WithEnvResolver(env.MapResolver{}),
		WithColour(ColourNever),
	)
	require.NoError(t, err)
	require.NoError(t, p.AddArgumentless("Verbose", "-v"))
	require.NoError(t, p.AddArgumented("", "Value", "--x"))
	require.NoError(t, p.WriteHelp(out))

	// no option has two spellings so the first column is empty
	want := strings.Join([]string{
		"demo — ",
		"",
		"",
		"SYNOPSIS:",
		"      -v" + strings.Repeat(" ", 12) + "Verbose",
		"      --x ARG" + strings.Repeat(" ", 7) + "Value",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRenderer_Colour(t *testing.T) {
	tests := []struct {
		name     string
		mode     ColourMode
		env      env.MapResolver
		terminal bool
		fd       bool
		want     bool
	}{
		{name: "always", mode: ColourAlways, env: env.MapResolver{}, want: true},
		{name: "never", mode: ColourNever, env: env.MapResolver{}, terminal: true, fd: true, want: false},
		{name: "auto on terminal", mode: ColourAuto, env: env.MapResolver{}, terminal: true, fd: true, want: true},
		{name: "auto with NO_COLOR", mode: ColourAuto, env: env.MapResolver{"NO_COLOR": "1"}, terminal: true, fd: true, want: false},
		{name: "auto with empty NO_COLOR", mode: ColourAuto, env: env.MapResolver{"NO_COLOR": ""}, terminal: true, fd: true, want: true},
		{name: "auto on pipe", mode: ColourAuto, env: env.MapResolver{}, terminal: false, fd: true, want: false},
		{name: "auto on buffer", mode: ColourAuto, env: env.MapResolver{}, terminal: true, fd: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newHelpParser(t,
				WithColour(tt.mode),
				WithEnvResolver(tt.env),
				WithTerminal(fakeTerminal(tt.terminal)))

			var w interface {
				io.Writer
				String() string
			}
			if tt.fd {
				w = &fdBuffer{}
			} else {
				w = &bytes.Buffer{}
			}
			require.NoError(t, p.WriteHelp(w))

			assert.Equal(t, tt.want, strings.Contains(w.String(), "\x1b["))
			assert.Contains(t, w.String(), "demo")
			assert.Contains(t, w.String(), "Print LINEs")
		})
	}
}

func TestParser_WriteHelp(t *testing.T) {
	p, out := newHelpParser(t, WithRenderer(staticRenderer("help\n")))

	assert.ErrorIs(t, p.WriteHelp(nil), ErrNilWriter)
	require.NoError(t, p.Help())
	assert.Equal(t, "help\n", out.String())

	p.SetRenderer(nil)
	out.Reset()
	require.NoError(t, p.Help())
	assert.True(t, strings.HasPrefix(out.String(), "demo — print a line\n"))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, displayWidth(""))
	assert.Equal(t, 6, displayWidth("--line"))
	assert.Equal(t, 6, displayWidth("--漢字"))
	assert.Equal(t, 3, displayWidth("--é"))
}

func TestDefaultRenderer_WideSpellings(t *testing.T) {
	out := &bytes.Buffer{}
	p, err := NewParserWith(WithProgram("demo"), WithColour(ColourNever), WithEnvResolver(env.MapResolver{}))
	require.NoError(t, err)
	require.NoError(t, p.AddArgumentless("Wide", "-w", "--漢字"))
	require.NoError(t, p.AddArgumentless("Narrow", "-n", "--ab"))
	require.NoError(t, p.WriteHelp(out))

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	// both help texts start in the same cell
	wide := lines[4][:strings.Index(lines[4], "Wide")]
	narrow := lines[5][:strings.Index(lines[5], "Narrow")]
	assert.Equal(t, displayWidth(narrow), displayWidth(wide))
	assert.Equal(t, len(narrow)+2, len(wide))
}
