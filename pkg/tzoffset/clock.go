// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package tzoffset

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() (time.Time, error)
}

// SystemClock reads the host wall clock. The implementation is chosen per
// platform; see clock_unix.go and clock_others.go.
type SystemClock struct{}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() (time.Time, error) {
	return time.Time(c), nil
}
