// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package tzoffset

import (
	"fmt"
	"strings"
	"time"
)

// checkLocalZone reports a $TZ value the runtime failed to load. time.Local
// falls back to UTC without an error in that case.
func checkLocalZone(tz string, set bool, local *time.Location) error {
	tz = strings.TrimPrefix(tz, ":")
	if !set || tz == "" || tz == "UTC" || local.String() != "UTC" {
		return nil
	}
	return fmt.Errorf("%w: TZ=%q could not be loaded, local time fell back to UTC", ErrTimezoneResolution, tz)
}
