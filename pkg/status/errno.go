package status

import "syscall"

// errnoMessage renders the OS-provided message for a raw errno value.
func errnoMessage(errno int) string {
	return syscall.Errno(errno).Error()
}
