// Package procname looks up the name of the current process or one of its ancestors.
//
// Level 0 is the current process, 1 its parent, 2 the parent's parent and so on.
// When the process was started through an interpreter (a shell running a script, a
// Python or Java launcher) the interesting name is usually the script rather than the
// interpreter, which is what the hasInterpreter argument of Name selects.
package procname

import (
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// finder and cmdline are swapped out in tests
var (
	finder  = ps.FindProcess
	cmdline = readCmdline
	selfPID = os.Getpid
)

// interpreterOptionsWithValue lists interpreter options which consume the following argument
var interpreterOptionsWithValue = map[string]bool{
	"-c":         true,
	"-m":         true,
	"-W":         true,
	"-cp":        true,
	"-classpath": true,
}

// Name returns the name of the process levels generations above the current one.
// Without hasInterpreter the name is the first word of the command line; with it, the
// first argument which is not an interpreter option. The boolean is false when the
// process tree cannot be walked that far or the name is unavailable.
func Name(levels int, hasInterpreter bool) (string, bool) {
	pid, ok := Ancestor(levels)
	if !ok {
		return "", false
	}

	argv, err := cmdline(pid)
	if err != nil || len(argv) == 0 {
		return "", false
	}

	if !hasInterpreter {
		if argv[0] == "" {
			return "", false
		}
		return argv[0], true
	}

	return ScriptName(argv)
}

// Parent is shorthand for Name(1, false)
func Parent() (string, bool) {
	return Name(1, false)
}

// Ancestor returns the pid of the process levels generations above the current one
func Ancestor(levels int) (int, bool) {
	pid := selfPID()
	for lvl := levels; lvl > 0; lvl-- {
		p, err := finder(pid)
		if err != nil || p == nil {
			return 0, false
		}
		pid = p.PPid()
		if pid <= 0 {
			return 0, false
		}
	}

	return pid, true
}

// ScriptName returns the first argument of an interpreter command line which is
// neither an interpreter option nor the value of one. Everything after "--" is an
// argument, so the first word following it is returned.
func ScriptName(argv []string) (string, bool) {
	dashed := false
	for i := 1; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case dashed:
			return arg, true
		case arg == "--":
			dashed = true
		case interpreterOptionsWithValue[arg]:
			i++
		case !strings.HasPrefix(arg, "-"):
			return arg, true
		}
	}

	return "", false
}
