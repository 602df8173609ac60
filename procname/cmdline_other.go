//go:build !linux

package procname

import (
	"errors"
	"os"
)

var errProcessNotFound = errors.New("process not found")

// readCmdline returns what is known of the argument vector of pid. Without procfs only
// the executable name is available; the current process still has its full arguments.
func readCmdline(pid int) ([]string, error) {
	if pid == os.Getpid() {
		return os.Args, nil
	}

	p, err := finder(pid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errProcessNotFound
	}

	return []string{p.Executable()}, nil
}
