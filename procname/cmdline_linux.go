//go:build linux

package procname

import (
	"os"
	"strconv"
	"strings"
)

// readCmdline returns the argument vector of pid from procfs
func readCmdline(pid int) ([]string, error) {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/cmdline")
	if err != nil {
		return nil, err
	}

	raw := strings.TrimSuffix(string(data), "\x00")
	if raw == "" {
		return nil, nil
	}

	return strings.Split(raw, "\x00"), nil
}
