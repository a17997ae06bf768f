// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package tzoffset

import "time"

func (SystemClock) Now() (time.Time, error) {
	return time.Now(), nil
}
