// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/lima-vm/tzoffset/pkg/tzoffset"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, statusOK},
		{"clock", fmt.Errorf("%w: clock_gettime: %w", tzoffset.ErrClockUnavailable, errors.New("EINVAL")), statusClockUnavailable},
		{"timezone", fmt.Errorf("%w: no location configured", tzoffset.ErrTimezoneResolution), statusTimezoneResolution},
		{"other", errors.New("unexpected"), statusOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status(tt.err))
		})
	}
}

func TestExports(t *testing.T) {
	want, err := tzoffset.Hours()
	assert.NilError(t, err)

	assert.Equal(t, want, int(time_offset()))

	hours, st := checkedHours()
	assert.Equal(t, statusOK, st)
	assert.Equal(t, want, hours)

	assert.Equal(t, statusOther, int(time_offset_checked(nil)))
}
