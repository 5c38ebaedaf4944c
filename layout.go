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
	"os"
	"reflect"
	"strings"

	"github.com/ctessum/cdf"
)

// Dimension names used in RVIC files.
const (
	DimTime      = "time"
	DimTimesteps = "timesteps"
	DimLat       = "lat"
	DimLon       = "lon"
	DimOutlets   = "outlets"
	DimSources   = "sources"
	DimTracers   = "tracers"
	DimNV        = "nv"
	DimChars     = "nc_chars"
)

// Dims holds the dimension lengths of an RVIC file. A Time of zero
// makes time the record (unlimited) dimension. Zero values of Tracers,
// NV and Chars are replaced by len(RvicTracers), 2 and MaxNcChars.
type Dims struct {
	Time      int
	Timesteps int
	Lat       int
	Lon       int
	Outlets   int
	Sources   int
	Tracers   int
	NV        int
	Chars     int
}

func (d Dims) length(name string) int {
	switch name {
	case DimTime:
		return d.Time
	case DimTimesteps:
		return d.Timesteps
	case DimLat:
		return d.Lat
	case DimLon:
		return d.Lon
	case DimOutlets:
		return d.Outlets
	case DimSources:
		return d.Sources
	case DimTracers:
		if d.Tracers == 0 {
			return len(RvicTracers)
		}
		return d.Tracers
	case DimNV:
		if d.NV == 0 {
			return 2
		}
		return d.NV
	case DimChars:
		if d.Chars == 0 {
			return MaxNcChars
		}
		return d.Chars
	}
	return -1
}

// VarLayout is the storage type and shape of a variable.
type VarLayout struct {
	Type string
	Dims []string
}

// layouts gives the storage type and dimensions of each cataloged
// variable as it appears in RVIC parameter, history and restart files.
var layouts = map[string]VarLayout{
	"time":      {NcDouble, []string{DimTime}},
	"time_bnds": {NcDouble, []string{DimTime, DimNV}},
	"timesteps": {NcDouble, []string{DimTimesteps}},
	"lon":       {NcDouble, []string{DimLon}},
	"lat":       {NcDouble, []string{DimLat}},
	"xc":        {NcDouble, []string{DimLat, DimLon}},
	"yc":        {NcDouble, []string{DimLat, DimLon}},

	"fraction":           {NcDouble, []string{DimLat, DimLon}},
	"unit_hydrograph":    {NcDouble, []string{DimTimesteps, DimSources, DimTracers}},
	"avg_velocity":       {NcDouble, nil},
	"avg_diffusion":      {NcDouble, nil},
	"global_basin_id":    {NcInt, []string{DimLat, DimLon}},
	"full_time_length":   {NcInt, nil},
	"subset_length":      {NcInt, nil},
	"unit_hydrograph_dt": {NcDouble, nil},

	"outlet_x_ind":      {NcInt, []string{DimOutlets}},
	"outlet_y_ind":      {NcInt, []string{DimOutlets}},
	"outlet_lon":        {NcDouble, []string{DimOutlets}},
	"outlet_lat":        {NcDouble, []string{DimOutlets}},
	"outlet_decomp_ind": {NcInt, []string{DimOutlets}},
	"outlet_number":     {NcInt, []string{DimOutlets}},
	"outlet_mask":       {NcInt, []string{DimOutlets}},
	"outlet_name":       {NcChar, []string{DimOutlets, DimChars}},

	"source_x_ind":       {NcInt, []string{DimSources}},
	"source_y_ind":       {NcInt, []string{DimSources}},
	"source_lon":         {NcDouble, []string{DimSources}},
	"source_lat":         {NcDouble, []string{DimSources}},
	"source_decomp_ind":  {NcInt, []string{DimSources}},
	"source_time_offset": {NcInt, []string{DimSources}},
	"source2outlet_ind":  {NcInt, []string{DimSources}},

	"ring":       {NcDouble, []string{DimTimesteps, DimOutlets, DimTracers}},
	"streamflow": {NcDouble, []string{DimTime, DimOutlets}},
	"storage":    {NcDouble, []string{DimTime, DimOutlets}},

	"timemgr_rst_type":      {NcInt, nil},
	"timemgr_rst_step_sec":  {NcInt, nil},
	"timemgr_rst_start_ymd": {NcInt, nil},
	"timemgr_rst_start_tod": {NcInt, nil},
	"timemgr_rst_ref_ymd":   {NcInt, nil},
	"timemgr_rst_ref_tod":   {NcInt, nil},
	"timemgr_rst_curr_ymd":  {NcInt, nil},
	"timemgr_rst_curr_tod":  {NcInt, nil},
}

// LookupLayout returns the storage type and dimensions of the
// variable with the given NetCDF name.
func LookupLayout(name string) (VarLayout, bool) {
	l, ok := layouts[name]
	if !ok {
		return VarLayout{}, false
	}
	l.Dims = append([]string(nil), l.Dims...)
	return l, true
}

// ErrUnknownVariable is returned when a variable is not in the catalog.
var ErrUnknownVariable = errors.New("rvic: unknown variable")

// NewHeader returns a defined header holding the global attributes g,
// if g is not nil, and the named variables with their metadata and
// fill values. Only the dimensions used by the variables are created.
func NewHeader(g *NcGlobals, d Dims, vars ...string) (h *cdf.Header, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("rvic: building NetCDF header: %v", r)
		}
	}()

	var dimNames []string
	var dimLengths []int
	seen := make(map[string]bool)
	for _, v := range vars {
		l, ok := layouts[v]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
		if _, err := NcZero(l.Type); err != nil {
			return nil, fmt.Errorf("rvic: variable %s: %w", v, err)
		}
		for i, dim := range l.Dims {
			if seen[dim] {
				continue
			}
			n := d.length(dim)
			if n < 0 || (n == 0 && !(dim == DimTime && i == 0)) {
				return nil, fmt.Errorf("rvic: variable %s: invalid length %d for dimension %s", v, n, dim)
			}
			seen[dim] = true
			dimNames = append(dimNames, dim)
			dimLengths = append(dimLengths, n)
		}
	}

	h = cdf.NewHeader(dimNames, dimLengths)
	if g != nil {
		g.AddTo(h)
	}
	for _, v := range vars {
		l := layouts[v]
		zero, _ := NcZero(l.Type)
		h.AddVariable(v, l.Dims, zero)
		meta, _ := LookupVar(v)
		meta.AddTo(h, v)
		switch l.Type {
		case NcDouble:
			h.AddAttribute(v, "_FillValue", []float64{FillValueF})
		case NcFloat:
			h.AddAttribute(v, "_FillValue", []float32{float32(FillValueF)})
		case NcInt:
			h.AddAttribute(v, "_FillValue", []int32{FillValueI})
		}
	}
	h.Define()
	return h, nil
}

// WriteEmpty writes h to w and sets every non-record variable to its
// fill value.
func WriteEmpty(w *os.File, h *cdf.Header) error {
	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("rvic: writing NetCDF header: %v", err)
	}
	for _, v := range h.Variables() {
		if h.IsRecordVariable(v) {
			continue
		}
		if err := f.Fill(v); err != nil {
			return fmt.Errorf("rvic: filling variable %s: %v", v, err)
		}
	}
	return cdf.UpdateNumRecs(w)
}

// Check compares the attributes of every cataloged variable in h
// with the catalog and checks that h declares a CF Conventions
// attribute. Variables that are not in the catalog are ignored, and a
// missing valid_range is not a mismatch.
func Check(h *cdf.Header) []error {
	var errs []error
	conv, _ := h.GetAttribute("", "Conventions").(string)
	if !strings.HasPrefix(conv, "CF-") {
		errs = append(errs, fmt.Errorf("rvic: global attribute Conventions is %q, want a CF convention", conv))
	}
	for _, name := range h.Variables() {
		want, ok := LookupVar(name)
		if !ok {
			continue
		}
		got, _ := ReadNcVar(h, name)
		errs = append(errs, compareVar(name, got, want)...)
	}
	return errs
}

func compareVar(name string, got, want NcVar) []error {
	var errs []error
	cmp := func(attr, g, w string) {
		if g != w {
			errs = append(errs, fmt.Errorf("rvic: variable %s: %s is %q, want %q", name, attr, g, w))
		}
	}
	cmp("long_name", got.LongName, want.LongName)
	cmp("units", got.Units, want.Units)
	cmp("flag_values", got.FlagValues, want.FlagValues)
	cmp("flag_meanings", got.FlagMeanings, want.FlagMeanings)
	// Older RVIC releases wrote valid_range on fewer variables, so only a
	// range that is present can disagree.
	if len(got.ValidRange) != 0 && !reflect.DeepEqual(got.ValidRange, want.ValidRange) {
		errs = append(errs, fmt.Errorf("rvic: variable %s: valid_range is %v, want %v", name, got.ValidRange, want.ValidRange))
	}
	return errs
}
