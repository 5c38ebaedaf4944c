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

package rvicutil

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/UW-Hydro/rvic"
)

// printCalendars writes the calendar key table to w.
func printCalendars(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "key\tcalendars")
	for _, k := range rvic.CalendarCodes() {
		a, _ := rvic.CalendarAliases(k)
		fmt.Fprintf(tw, "%d\t%s\n", k, strings.Join(a, ", "))
	}
	return tw.Flush()
}

// printVars writes the catalog entries for names to w in the given
// format.
func printVars(w io.Writer, format string, names []string) error {
	vars := make(map[string]rvic.NcVar, len(names))
	for _, n := range names {
		v, ok := rvic.LookupVar(n)
		if !ok {
			return fmt.Errorf("%w: %q", rvic.ErrUnknownVariable, n)
		}
		vars[n] = v
	}

	switch format {
	case "toml":
		// The encoder sorts the tables by name.
		return toml.NewEncoder(w).Encode(vars)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "name\tlong_name\tunits")
		for _, n := range names {
			v := vars[n]
			fmt.Fprintf(tw, "%s\t%s\t%s\n", n, v.LongName, v.Units)
			if v.FlagValues != "" {
				fmt.Fprintf(tw, "\tflag_values\t%s\n", v.FlagValues)
				fmt.Fprintf(tw, "\tflag_meanings\t%s\n", v.FlagMeanings)
			}
			if len(v.ValidRange) > 0 {
				fmt.Fprintf(tw, "\tvalid_range\t%v\n", v.ValidRange)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("rvic: invalid format %q; use text or toml", format)
	}
}
