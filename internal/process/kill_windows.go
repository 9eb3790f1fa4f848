//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates pid and all its children via taskkill
// (/F force, /T tree). Chrome forks renderer and GPU children that can
// survive a graceful browser close; reaping the tree keeps batch runs
// from accumulating zombies.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill is the fallback
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
