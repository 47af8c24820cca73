//go:build linux

package main

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapped corpus will be read
// front to back. Best-effort: errors are ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
