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
	"github.com/UW-Hydro/rvic/internal/hash"
	"github.com/ctessum/cdf"
)

// NcVar holds the descriptive attributes of a NetCDF variable.
// FlagValues, FlagMeanings and ValidRange are only set for the
// variables that need them.
type NcVar struct {
	LongName     string  `toml:"long_name"`
	Units        string  `toml:"units"`
	FlagValues   string  `toml:"flag_values,omitempty"`
	FlagMeanings string  `toml:"flag_meanings,omitempty"`
	ValidRange   []int32 `toml:"valid_range,omitempty"`
}

// An Attribute is a named NetCDF attribute value of type string or
// []int32.
type Attribute struct {
	Name  string
	Value interface{}
}

// Coordinate variables.
var (
	Time = NcVar{LongName: "time", Units: TimeUnits}

	// TimeBnds has no attributes of its own; CF bounds variables
	// take them from their coordinate variable.
	TimeBnds = NcVar{}

	Timesteps = NcVar{LongName: "Series of timesteps", Units: "unitless"}
	Lon       = NcVar{LongName: "longitude", Units: "degrees_east"}
	Lat       = NcVar{LongName: "latitude", Units: "degrees_north"}
	Xc        = NcVar{LongName: "longitude", Units: "degrees_east"}
	Yc        = NcVar{LongName: "latitude", Units: "degrees_north"}
)

// Data variables.
var (
	Fraction         = NcVar{LongName: "fraction of grid cell that is active", Units: "unitless"}
	UnitHydrograph   = NcVar{LongName: "Unit Hydrograph", Units: "unitless"}
	AvgVelocity      = NcVar{LongName: "Flow Velocity Parameter", Units: "m s-1"}
	AvgDiffusion     = NcVar{LongName: "Diffusion Parameter", Units: "m2 s-1"}
	GlobalBasinID    = NcVar{LongName: "Global Basin ID from RvicFdrFile", Units: "unitless"}
	FullTimeLength   = NcVar{LongName: "Length of original unit hydrograph", Units: "timesteps"}
	SubsetLength     = NcVar{LongName: "Shortened length of the unit hydrograph", Units: "timesteps"}
	UnitHydrographDt = NcVar{LongName: "Unit hydrograph timestep", Units: "seconds"}

	OutletXInd      = NcVar{LongName: "x grid coordinate of outlet grid cell", Units: "unitless"}
	OutletYInd      = NcVar{LongName: "y grid coordinate of outlet grid cell", Units: "unitless"}
	OutletLon       = NcVar{LongName: "Longitude coordinate of outlet grid cell", Units: "degrees_east"}
	OutletLat       = NcVar{LongName: "Latitude coordinate of outlet grid cell", Units: "degrees_north"}
	OutletDecompInd = NcVar{LongName: "1d grid location of outlet grid cell", Units: "unitless"}
	OutletNumber    = NcVar{LongName: "outlet number", Units: "unitless"}
	OutletMask      = NcVar{LongName: "type of outlet point", Units: "0-ocean, 1-land, 2-guage, 3-none"}
	OutletName      = NcVar{LongName: "Outlet guage name", Units: "unitless"}

	SourceXInd       = NcVar{LongName: "x grid coordinate of source grid cell", Units: "unitless"}
	SourceYInd       = NcVar{LongName: "y grid coordinate of source grid cell", Units: "unitless"}
	SourceLon        = NcVar{LongName: "Longitude coordinate of source grid cell", Units: "degrees_east"}
	SourceLat        = NcVar{LongName: "Latitude coordinate of source grid cell", Units: "degrees_north"}
	SourceDecompInd  = NcVar{LongName: "1d grid location of source grid cell", Units: "unitless"}
	SourceTimeOffset = NcVar{LongName: "Number of leading timesteps ommited", Units: "timesteps"}
	Source2OutletInd = NcVar{LongName: "source to outlet index mapping", Units: "unitless"}

	Ring       = NcVar{LongName: "Convolution Ring", Units: "kg m-2 s-1"}
	Streamflow = NcVar{LongName: "Streamflow at outlet grid cell", Units: "kg m-2 s-1"}
	Storage    = NcVar{LongName: "Mass storage in stream upstream of outlet grid cell", Units: "kg m-2 s-1"}
)

// Restart time manager variables. The calendar type flags follow
// http://cf-pcmdi.llnl.gov/documents/cf-conventions/1.6/cf-conventions.html#calendar
// and the keys of CalendarAliases.
var (
	TimemgrRstType = NcVar{
		LongName:     "calendar type",
		Units:        "unitless",
		FlagValues:   "0, 1, 2, 3, 4, 5, 6",
		FlagMeanings: "NONE, NO_LEAP_C, GREGORIAN, PROLEPTIC_GREGORIAN, ALL_LEAP, 360_DAY, JULIAN",
	}
	TimemgrRstStepSec  = NcVar{LongName: "seconds component of timestep size", Units: "sec", ValidRange: []int32{0, int32(SecsPerDay)}}
	TimemgrRstStartYmd = NcVar{LongName: "start date", Units: "YYYYMMDD"}
	TimemgrRstStartTod = NcVar{LongName: "start time of day", Units: "sec", ValidRange: []int32{0, int32(SecsPerDay)}}
	TimemgrRstRefYmd   = NcVar{LongName: "reference date", Units: "YYYYMMDD"}
	TimemgrRstRefTod   = NcVar{LongName: "reference time of day", Units: "sec", ValidRange: []int32{0, int32(SecsPerDay)}}
	TimemgrRstCurrYmd  = NcVar{LongName: "current date", Units: "YYYYMMDD"}
	TimemgrRstCurrTod  = NcVar{LongName: "current time of day", Units: "sec", ValidRange: []int32{0, int32(SecsPerDay)}}
)

type catalogEntry struct {
	name string
	v    NcVar
}

// catalog lists the variables by their NetCDF names. It holds copies of
// the descriptors above, so assigning to those does not change it.
var catalog = []catalogEntry{
	{"time", Time.copy()},
	{"time_bnds", TimeBnds.copy()},
	{"timesteps", Timesteps.copy()},
	{"lon", Lon.copy()},
	{"lat", Lat.copy()},
	{"xc", Xc.copy()},
	{"yc", Yc.copy()},
	{"fraction", Fraction.copy()},
	{"unit_hydrograph", UnitHydrograph.copy()},
	{"avg_velocity", AvgVelocity.copy()},
	{"avg_diffusion", AvgDiffusion.copy()},
	{"global_basin_id", GlobalBasinID.copy()},
	{"full_time_length", FullTimeLength.copy()},
	{"subset_length", SubsetLength.copy()},
	{"unit_hydrograph_dt", UnitHydrographDt.copy()},
	{"outlet_x_ind", OutletXInd.copy()},
	{"outlet_y_ind", OutletYInd.copy()},
	{"outlet_lon", OutletLon.copy()},
	{"outlet_lat", OutletLat.copy()},
	{"outlet_decomp_ind", OutletDecompInd.copy()},
	{"outlet_number", OutletNumber.copy()},
	{"outlet_mask", OutletMask.copy()},
	{"outlet_name", OutletName.copy()},
	{"source_x_ind", SourceXInd.copy()},
	{"source_y_ind", SourceYInd.copy()},
	{"source_lon", SourceLon.copy()},
	{"source_lat", SourceLat.copy()},
	{"source_decomp_ind", SourceDecompInd.copy()},
	{"source_time_offset", SourceTimeOffset.copy()},
	{"source2outlet_ind", Source2OutletInd.copy()},
	{"ring", Ring.copy()},
	{"streamflow", Streamflow.copy()},
	{"storage", Storage.copy()},
	{"timemgr_rst_type", TimemgrRstType.copy()},
	{"timemgr_rst_step_sec", TimemgrRstStepSec.copy()},
	{"timemgr_rst_start_ymd", TimemgrRstStartYmd.copy()},
	{"timemgr_rst_start_tod", TimemgrRstStartTod.copy()},
	{"timemgr_rst_ref_ymd", TimemgrRstRefYmd.copy()},
	{"timemgr_rst_ref_tod", TimemgrRstRefTod.copy()},
	{"timemgr_rst_curr_ymd", TimemgrRstCurrYmd.copy()},
	{"timemgr_rst_curr_tod", TimemgrRstCurrTod.copy()},
}

// LookupVar returns a copy of the metadata for the variable with the
// given NetCDF name.
func LookupVar(name string) (NcVar, bool) {
	for _, e := range catalog {
		if e.name == name {
			return e.v.copy(), true
		}
	}
	return NcVar{}, false
}

// VarNames returns the NetCDF names of all cataloged variables.
func VarNames() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// CatalogHash returns a fingerprint of the variable catalog. Files written
// by builds with the same fingerprint carry identical variable metadata.
func CatalogHash() string {
	m := make(map[string]NcVar, len(catalog))
	for _, e := range catalog {
		m[e.name] = e.v
	}
	return hash.Hash(m)
}

func (v NcVar) copy() NcVar {
	if v.ValidRange != nil {
		v.ValidRange = append([]int32(nil), v.ValidRange...)
	}
	return v
}

// Attributes returns the non-empty attributes of v.
func (v NcVar) Attributes() []Attribute {
	all := []Attribute{
		{"long_name", v.LongName},
		{"units", v.Units},
		{"flag_values", v.FlagValues},
		{"flag_meanings", v.FlagMeanings},
	}
	if len(v.ValidRange) > 0 {
		all = append(all, Attribute{"valid_range", append([]int32(nil), v.ValidRange...)})
	}
	return nonEmpty(all)
}

// AddTo adds the attributes of v to variable name in h. The variable
// must already be in h and h must be mutable.
func (v NcVar) AddTo(h *cdf.Header, name string) {
	for _, a := range v.Attributes() {
		h.AddAttribute(name, a.Name, a.Value)
	}
}

// ReadNcVar reads the descriptive attributes of variable name from h.
func ReadNcVar(h *cdf.Header, name string) (NcVar, bool) {
	found := false
	for _, n := range h.Variables() {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return NcVar{}, false
	}
	s := func(a string) string {
		v, _ := h.GetAttribute(name, a).(string)
		return v
	}
	v := NcVar{
		LongName:     s("long_name"),
		Units:        s("units"),
		FlagValues:   s("flag_values"),
		FlagMeanings: s("flag_meanings"),
	}
	if r, ok := h.GetAttribute(name, "valid_range").([]int32); ok {
		v.ValidRange = append([]int32(nil), r...)
	}
	return v, true
}

func nonEmpty(attrs []Attribute) []Attribute {
	var o []Attribute
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case string:
			if v == "" {
				continue
			}
		case []int32:
			if len(v) == 0 {
				continue
			}
		}
		o = append(o, a)
	}
	return o
}
