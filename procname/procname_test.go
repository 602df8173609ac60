package procname

import (
	"errors"
	"os"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	pid, ppid int
	exe       string
}

func (f fakeProcess) Pid() int           { return f.pid }
func (f fakeProcess) PPid() int          { return f.ppid }
func (f fakeProcess) Executable() string { return f.exe }

// withFakeTree replaces the process table with procs for the duration of the test
func withFakeTree(t *testing.T, self int, procs map[int]fakeProcess, argv map[int][]string) {
	t.Helper()
	oldFinder, oldCmdline, oldSelf := finder, cmdline, selfPID
	t.Cleanup(func() {
		finder, cmdline, selfPID = oldFinder, oldCmdline, oldSelf
	})

	selfPID = func() int { return self }
	finder = func(pid int) (ps.Process, error) {
		p, ok := procs[pid]
		if !ok {
			return nil, nil
		}
		return p, nil
	}
	cmdline = func(pid int) ([]string, error) {
		a, ok := argv[pid]
		if !ok {
			return nil, errors.New("no such process")
		}
		return a, nil
	}
}

func TestName_WalksAncestors(t *testing.T) {
	withFakeTree(t, 30,
		map[int]fakeProcess{
			30: {pid: 30, ppid: 20, exe: "test"},
			20: {pid: 20, ppid: 10, exe: "python3"},
			10: {pid: 10, ppid: 1, exe: "bash"},
		},
		map[int][]string{
			30: {"./test", "-h"},
			20: {"python3", "-W", "ignore", "script.py", "arg"},
			10: {"-bash"},
		})

	tests := []struct {
		name           string
		levels         int
		hasInterpreter bool
		want           string
		wantOK         bool
	}{
		{name: "self", levels: 0, want: "./test", wantOK: true},
		{name: "parent", levels: 1, want: "python3", wantOK: true},
		{name: "parent script", levels: 1, hasInterpreter: true, want: "script.py", wantOK: true},
		{name: "grandparent", levels: 2, want: "-bash", wantOK: true},
		{name: "grandparent has no script", levels: 2, hasInterpreter: true, wantOK: false},
		{name: "beyond the known tree", levels: 4, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.levels, tt.hasInterpreter)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParent(t *testing.T) {
	withFakeTree(t, 2,
		map[int]fakeProcess{2: {pid: 2, ppid: 1, exe: "child"}},
		map[int][]string{1: {"init"}, 2: {"child"}})

	name, ok := Parent()
	assert.True(t, ok)
	assert.Equal(t, "init", name)
}

func TestScriptName(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		want   string
		wantOK bool
	}{
		{name: "plain script", argv: []string{"python3", "test.py"}, want: "test.py", wantOK: true},
		{name: "option values skipped", argv: []string{"java", "-cp", "lib.jar", "Test"}, want: "Test", wantOK: true},
		{name: "module option consumes value", argv: []string{"python3", "-m", "pkg"}, wantOK: false},
		{name: "flags skipped", argv: []string{"sh", "-e", "-x", "run.sh"}, want: "run.sh", wantOK: true},
		{name: "double dash", argv: []string{"node", "--", "-weird.js"}, want: "-weird.js", wantOK: true},
		{name: "interpreter only", argv: []string{"bash"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScriptName(tt.argv)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName_CurrentProcess(t *testing.T) {
	name, ok := Name(0, false)
	require.True(t, ok, "the name of the running test binary should always be available")
	assert.NotEmpty(t, name)
	if len(os.Args) > 0 {
		assert.Equal(t, os.Args[0], name)
	}
}
