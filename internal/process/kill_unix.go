//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to pid's whole process group. The label
// renderer launches Chrome itself, and Chrome forks renderer and GPU
// children that can survive a graceful browser close; reaping the group
// keeps batch runs from accumulating zombies.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill is the fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
