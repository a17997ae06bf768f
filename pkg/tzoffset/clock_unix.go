// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd

package tzoffset

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (SystemClock) Now() (time.Time, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return time.Time{}, fmt.Errorf("%w: clock_gettime: %w", ErrClockUnavailable, err)
	}
	return time.Unix(ts.Unix()), nil
}
