// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/lima-vm/tzoffset/pkg/tzoffset"
)

// Status codes returned by time_offset_checked.
const (
	statusOther              = -1
	statusOK                 = 0
	statusClockUnavailable   = 1
	statusTimezoneResolution = 2
)

func status(err error) int {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, tzoffset.ErrClockUnavailable):
		return statusClockUnavailable
	case errors.Is(err, tzoffset.ErrTimezoneResolution):
		return statusTimezoneResolution
	default:
		return statusOther
	}
}
