// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// libtzoffset exports the UTC offset to C callers.
//
//	go build -buildmode=c-shared -o libtzoffset.so ./cmd/libtzoffset
package main

import "C"

import (
	"github.com/sirupsen/logrus"

	"github.com/lima-vm/tzoffset/pkg/tzoffset"
)

// time_offset returns the local UTC offset in whole hours, or 0 on failure.
//
//export time_offset
func time_offset() C.int { //nolint:revive,stylecheck // C symbol name
	hours, err := tzoffset.Hours()
	if err != nil {
		logrus.WithError(err).Warn("failed to compute the UTC offset, returning 0")
		return 0
	}
	return C.int(hours)
}

// time_offset_checked stores the offset in *out and returns a status code.
//
//export time_offset_checked
func time_offset_checked(out *C.int) C.int { //nolint:revive,stylecheck // C symbol name
	if out == nil {
		return C.int(statusOther)
	}
	hours, st := checkedHours()
	if st == statusOK {
		*out = C.int(hours)
	}
	return C.int(st)
}

func checkedHours() (int, int) {
	hours, err := tzoffset.Hours()
	if err != nil {
		logrus.WithError(err).Debug("failed to compute the UTC offset")
		return 0, status(err)
	}
	return hours, statusOK
}

func main() {}
