// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package tzoffset computes the host's UTC offset in whole hours.
package tzoffset

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	secondsPerHour = 3600

	// No real zone is further than UTC-12 or UTC+14; anything past a day plus
	// slack means the zone data could not be applied.
	maxOffsetSeconds = 26 * secondsPerHour
)

var (
	ErrClockUnavailable   = errors.New("clock unavailable")
	ErrTimezoneResolution = errors.New("timezone resolution failed")
)

// Offset is the result of a single computation.
type Offset struct {
	// Instant is the clock reading, truncated to whole seconds.
	Instant time.Time
	// Reinterpreted is the instant obtained by reading the UTC calendar fields
	// of Instant as local calendar fields.
	Reinterpreted time.Time
	Hours         int
	// Truncated is true when the zone offset is not a whole number of hours.
	Truncated bool
}

// Calculator derives the UTC offset of Location at the time reported by Clock.
// The zero value is not usable; see New.
type Calculator struct {
	Clock    Clock
	Location *time.Location
}

// New returns a Calculator reading the system clock and the host local zone.
func New() *Calculator {
	return &Calculator{
		Clock:    SystemClock{},
		Location: time.Local,
	}
}

// Hours returns the host's current UTC offset in whole hours.
func Hours() (int, error) {
	return New().Hours()
}

// Hours returns the offset in whole hours, truncated toward zero.
func (c *Calculator) Hours() (int, error) {
	o, err := c.Compute()
	if err != nil {
		return 0, err
	}
	return o.Hours, nil
}

// Compute takes the UTC calendar fields of the current instant, reinterprets
// them as local calendar fields, and returns (instant - reinterpreted) in hours.
// Whether daylight saving applies is decided by the zone rules for that
// calendar date, not by the instant's own local status.
func (c *Calculator) Compute() (*Offset, error) {
	if c.Clock == nil {
		return nil, fmt.Errorf("%w: no clock configured", ErrClockUnavailable)
	}
	if c.Location == nil {
		return nil, fmt.Errorf("%w: no location configured", ErrTimezoneResolution)
	}
	if c.Location == time.Local {
		tz, set := os.LookupEnv("TZ")
		if err := checkLocalZone(tz, set, time.Local); err != nil {
			return nil, err
		}
	}
	now, err := c.Clock.Now()
	if err != nil {
		if errors.Is(err, ErrClockUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrClockUnavailable, err)
	}
	if now.IsZero() {
		return nil, fmt.Errorf("%w: clock returned the zero time", ErrClockUnavailable)
	}

	u := now.UTC()
	instant := time.Unix(u.Unix(), 0).UTC()
	reinterpreted := reinterpret(u, c.Location)

	diff := instant.Unix() - reinterpreted.Unix()
	if diff > maxOffsetSeconds || diff < -maxOffsetSeconds {
		return nil, fmt.Errorf("%w: offset of %ds in %q is out of range", ErrTimezoneResolution, diff, c.Location)
	}
	o := &Offset{
		Instant:       instant,
		Reinterpreted: reinterpreted.UTC(),
		Hours:         int(diff / secondsPerHour),
		Truncated:     diff%secondsPerHour != 0,
	}
	logrus.WithField("location", c.Location.String()).Debugf("UTC offset at %s: %d hour(s)", instant.Format(time.RFC3339), o.Hours)
	if o.Truncated {
		logrus.Debugf("offset of %ds in %q is not a whole number of hours, truncated to %d", diff, c.Location, o.Hours)
	}
	return o, nil
}

// reinterpret reads the calendar fields of u as wall-clock time in loc.
// A wall time inside a spring-forward gap does not exist; it is read with the
// offset in force before the gap, so 02:30 on a night that skips 02:00-03:00
// lands at 03:30.
func reinterpret(u time.Time, loc *time.Location) time.Time {
	r := time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, loc)
	_, off := r.Zone()
	if r.Unix()+int64(off) == u.Unix() {
		return r
	}
	// time.Date normalized the fields. The gap lies between the two offsets
	// and the earlier one is the smaller.
	_, other := time.Unix(u.Unix()-int64(off), 0).In(loc).Zone()
	before := min(off, other)
	logrus.Debugf("%s does not exist in %q, using the offset %ds in force before the gap", u.Format(time.DateTime), loc, before)
	return time.Unix(u.Unix()-int64(before), 0).In(loc)
}
