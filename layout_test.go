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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/kr/pretty"
)

var testDims = Dims{Timesteps: 4, Lat: 2, Lon: 3, Outlets: 2, Sources: 5}

func TestLayoutCoversCatalog(t *testing.T) {
	for _, n := range VarNames() {
		l, ok := LookupLayout(n)
		if !ok {
			t.Errorf("%s has no layout", n)
			continue
		}
		if _, err := NcZero(l.Type); err != nil {
			t.Errorf("%s: %v", n, err)
		}
	}
	if len(layouts) != len(VarNames()) {
		t.Errorf("layout has %d entries for %d variables", len(layouts), len(VarNames()))
	}
}

func TestNewHeader(t *testing.T) {
	g := NewNcGlobals(Title("test"))
	h, err := NewHeader(g, testDims, "time", "streamflow", "outlet_name", "timemgr_rst_ref_tod")
	if err != nil {
		t.Fatal(err)
	}
	if errs := h.Check(); len(errs) != 0 {
		t.Fatal(errs)
	}
	wantDims := []string{DimTime, DimOutlets, DimChars}
	if dims := h.Dimensions(""); !reflect.DeepEqual(dims, wantDims) {
		t.Errorf("dimensions %v != %v", dims, wantDims)
	}
	if wantLengths := []int{0, 2, MaxNcChars}; !reflect.DeepEqual(h.Lengths(""), wantLengths) {
		t.Errorf("lengths %v != %v", h.Lengths(""), wantLengths)
	}
	if !h.IsRecordVariable("streamflow") {
		t.Error("streamflow should be a record variable")
	}
	if v, ok := h.FillValue("streamflow").(float64); !ok || v != FillValueF {
		t.Errorf("streamflow fill value %v", h.FillValue("streamflow"))
	}
	if v, ok := h.FillValue("timemgr_rst_ref_tod").(int32); !ok || v != FillValueI {
		t.Errorf("timemgr_rst_ref_tod fill value %v", h.FillValue("timemgr_rst_ref_tod"))
	}
	if u := h.GetAttribute("streamflow", "units"); u != "kg m-2 s-1" {
		t.Errorf("streamflow units %v", u)
	}
	if errs := Check(h); len(errs) != 0 {
		t.Error(errs)
	}
}

func TestNewHeaderErrors(t *testing.T) {
	if _, err := NewHeader(nil, testDims, "time", "runoff"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("want ErrUnknownVariable, got %v", err)
	}
	if _, err := NewHeader(nil, Dims{}, "outlet_lon"); err == nil {
		t.Error("want error for zero length outlets dimension")
	}
	if _, err := NewHeader(nil, testDims, "lon", "lon"); err == nil {
		t.Error("want error for repeated variable")
	}
}

func TestWriteEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "params.nc")
	w, err := os.Create(file)
	if err != nil {
		t.Fatal(err)
	}
	g := NewNcGlobals(Title("RVIC parameter file"), CaseName("sample"), FdrFile("fdr.nc"))
	h, err := NewHeader(g, testDims, VarNames()...)
	if err != nil {
		t.Fatal(err)
	}
	if err = WriteEmpty(w, h); err != nil {
		t.Fatal(err)
	}
	w.Close()

	r, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	f, err := cdf.Open(r)
	if err != nil {
		t.Fatal(err)
	}

	if diff := pretty.Diff(ReadNcGlobals(f.Header), g); len(diff) != 0 {
		t.Errorf("global attributes: %v", diff)
	}
	if errs := Check(f.Header); len(errs) != 0 {
		t.Error(errs)
	}
	for _, n := range VarNames() {
		got, ok := ReadNcVar(f.Header, n)
		if !ok {
			t.Errorf("%s missing from file", n)
			continue
		}
		want, _ := LookupVar(n)
		if diff := pretty.Diff(got, want); len(diff) != 0 {
			t.Errorf("%s: %v", n, diff)
		}
	}

	lons := f.Reader("outlet_lon", nil, nil).Zero(-1).([]float64)
	if _, err := f.Reader("outlet_lon", nil, nil).Read(lons); err != nil {
		t.Fatal(err)
	}
	for i, v := range lons {
		if v != FillValueF {
			t.Errorf("outlet_lon[%d] = %v, want fill value", i, v)
		}
	}
}

func TestCheck(t *testing.T) {
	h := cdf.NewHeader([]string{"outlets"}, []int{1})
	h.AddAttribute("", "Conventions", "COARDS")
	h.AddVariable("outlet_lon", []string{"outlets"}, []float64{0})
	h.AddAttribute("outlet_lon", "long_name", "Longitude coordinate of outlet grid cell")
	h.AddAttribute("outlet_lon", "units", "degrees")
	h.AddVariable("timemgr_rst_ref_tod", []string{"outlets"}, []int32{0})
	h.AddAttribute("timemgr_rst_ref_tod", "long_name", "reference time of day")
	h.AddAttribute("timemgr_rst_ref_tod", "units", "sec")
	h.AddAttribute("timemgr_rst_ref_tod", "valid_range", []int32{0, 3600})
	h.AddVariable("flow", []string{"outlets"}, []float64{0})
	h.AddAttribute("flow", "units", "cfs")
	h.Define()

	errs := Check(h)
	want := []string{
		`rvic: global attribute Conventions is "COARDS", want a CF convention`,
		`rvic: variable outlet_lon: units is "degrees", want "degrees_east"`,
		`rvic: variable timemgr_rst_ref_tod: valid_range is [0 3600], want [0 86400]`,
	}
	var got []string
	for _, e := range errs {
		got = append(got, e.Error())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%q != %q", got, want)
	}
}

// Restart files from earlier RVIC releases carry valid_range only on
// the step size and reference time of day.
func TestCheckRestartWithoutRanges(t *testing.T) {
	h := cdf.NewHeader(nil, nil)
	h.AddAttribute("", "Conventions", "CF-1.6")
	for _, v := range []struct {
		name, longName string
		validRange     bool
	}{
		{"timemgr_rst_step_sec", "seconds component of timestep size", true},
		{"timemgr_rst_start_tod", "start time of day", false},
		{"timemgr_rst_ref_tod", "reference time of day", true},
		{"timemgr_rst_curr_tod", "current time of day", false},
	} {
		h.AddVariable(v.name, nil, []int32{0})
		h.AddAttribute(v.name, "long_name", v.longName)
		h.AddAttribute(v.name, "units", "sec")
		if v.validRange {
			h.AddAttribute(v.name, "valid_range", []int32{0, 86400})
		}
	}
	h.Define()

	if errs := Check(h); len(errs) != 0 {
		t.Errorf("%v", errs)
	}
}
