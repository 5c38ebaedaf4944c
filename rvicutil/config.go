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
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/UW-Hydro/rvic"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// historyVars are the variables in an RVIC history file.
var historyVars = []string{
	"time", "time_bnds",
	"outlet_x_ind", "outlet_y_ind", "outlet_lon", "outlet_lat",
	"outlet_decomp_ind", "outlet_number", "outlet_mask", "outlet_name",
	"streamflow",
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expand any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="rvic.nc")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("rvic: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// checkVariables splits entries on commas and white space, drops blank
// ones and makes sure every variable is cataloged. Environment variables
// arrive as a single entry, for example "time,streamflow".
func checkVariables(vars []string) ([]string, error) {
	var o []string
	for _, entry := range vars {
		for _, v := range strings.FieldsFunc(entry, isVarSeparator) {
			if _, ok := rvic.LookupVar(v); !ok {
				return nil, fmt.Errorf("the Variables configuration includes %q, which is not an RVIC variable; "+
					"run 'rvic vars' for the list of variables", v)
			}
			o = append(o, v)
		}
	}
	if len(o) == 0 {
		return nil, fmt.Errorf("there are no variables specified for output. Please fill in " +
			"the Variables configuration and try again.")
	}
	return o, nil
}

func isVarSeparator(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// dimsFromConfig reads the dimension lengths from cfg. Lengths may be
// given as numbers or, from the environment, as strings.
func dimsFromConfig(cfg *viper.Viper) (rvic.Dims, error) {
	var d rvic.Dims
	for _, f := range []struct {
		name string
		v    *int
	}{
		{"Dims.Time", &d.Time},
		{"Dims.Timesteps", &d.Timesteps},
		{"Dims.Lat", &d.Lat},
		{"Dims.Lon", &d.Lon},
		{"Dims.Outlets", &d.Outlets},
		{"Dims.Sources", &d.Sources},
	} {
		n, err := cast.ToIntE(cfg.Get(f.name))
		if err != nil {
			return d, fmt.Errorf("rvic: reading %s configuration: %v", f.name, err)
		}
		if n < 0 {
			return d, fmt.Errorf("rvic: %s must not be negative but is %d", f.name, n)
		}
		*f.v = n
	}
	return d, nil
}

// globalsFromConfig returns the global attributes with the configured
// overrides applied. Empty values keep the defaults.
func globalsFromConfig(cfg *viper.Viper) *rvic.NcGlobals {
	var opts []rvic.GlobalsOption
	for _, o := range []struct {
		name string
		opt  func(string) rvic.GlobalsOption
	}{
		{"Title", rvic.Title},
		{"CaseName", rvic.CaseName},
		{"Comment", rvic.Comment},
		{"RvicPourPointsFile", rvic.PourPointsFile},
		{"RvicUHFile", rvic.UHFile},
		{"RvicFdrFile", rvic.FdrFile},
		{"RvicDomainFile", rvic.DomainFile},
	} {
		if v := os.ExpandEnv(cfg.GetString(o.name)); v != "" {
			opts = append(opts, o.opt(v))
		}
	}
	return rvic.NewNcGlobals(opts...)
}
