/*
Copyright © 2024 the RVIC authors.
This file is part of RVIC.

RVIC is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RVIC is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RVIC.  If not, see <http://www.gnu.org/licenses/>.
*/

package rvic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// calendarKeys links the CESM calendar key numbers stored in restart
// files to the CF calendar names that mean the same calendar.
var calendarKeys = map[int][]string{
	0: {"None"},
	1: {"noleap", "365_day"},
	2: {"gregorian", "standard"},
	3: {"proleptic_gregorian"},
	4: {"all_leap", "366_day"},
	5: {"360_day"},
	6: {"julian"},
}

// ErrUnknownCalendar is returned when a calendar name has no key.
var ErrUnknownCalendar = errors.New("rvic: unknown calendar")

// CalendarAliases returns the calendar names for the given key, and
// whether the key is defined. The returned slice may be modified.
func CalendarAliases(key int) ([]string, bool) {
	a, ok := calendarKeys[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), a...), true
}

// CalendarKey returns the key for the calendar name. Matching is not
// case sensitive.
func CalendarKey(name string) (int, error) {
	n := strings.TrimSpace(name)
	for key, aliases := range calendarKeys {
		for _, a := range aliases {
			if strings.EqualFold(a, n) {
				return key, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
}

// CalendarCodes returns the defined calendar keys in ascending order.
func CalendarCodes() []int {
	codes := make([]int, 0, len(calendarKeys))
	for k := range calendarKeys {
		codes = append(codes, k)
	}
	sort.Ints(codes)
	return codes
}
