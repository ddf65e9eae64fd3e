// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Implementation of Linux kernel ioctl macros (<uapi/asm-generic/ioctl.h>)
// See https://www.kernel.org/doc/Documentation/ioctl/ioctl-number.txt

package ioctl

import "golang.org/x/sys/unix"

const (
	iocNrbits   = 8
	iocTypebits = 8
	iocSizebits = 14

	iocNrshift   = 0
	iocTypeshift = iocNrshift + iocNrbits
	iocSizeshift = iocTypeshift + iocTypebits
	iocDirshift  = iocSizeshift + iocSizebits

	iocRead  = 2
	iocWrite = 1
)

// Iowr computes a read-write ioctl command number.
func Iowr(t, nr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<iocDirshift | t<<iocTypeshift | nr<<iocNrshift | size<<iocSizeshift
}

// Ioctl executes an ioctl command on the specified file descriptor.
func Ioctl(fd, cmd, ptr uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, ptr)
	if errno != 0 {
		return errno
	}
	return nil
}
