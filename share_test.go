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
	"reflect"
	"testing"
	"time"

	"github.com/ctessum/cdf"
)

func TestTimeConversion(t *testing.T) {
	if MinsPerDay != 1440 {
		t.Errorf("MinsPerDay = %v, want 1440", MinsPerDay)
	}
	if SecsPerDay != 86400 {
		t.Errorf("SecsPerDay = %v, want 86400", SecsPerDay)
	}
	if HoursPerDay*MinsPerHour != MinsPerDay {
		t.Errorf("%v*%v != %v", HoursPerDay, MinsPerHour, MinsPerDay)
	}
	if MinsPerDay*(SecsPerHour/MinsPerHour) != SecsPerDay {
		t.Errorf("%v*60 != %v", MinsPerDay, SecsPerDay)
	}
}

func TestTimeUnits(t *testing.T) {
	const want = "days since 0001-1-1 0:0:0"
	if TimeUnits != want {
		t.Errorf("%q != %q", TimeUnits, want)
	}
	if TimeUnits != "days since "+ReferenceString {
		t.Errorf("TimeUnits does not match ReferenceString %q", ReferenceString)
	}
	if ReferenceDate != 10101 || ReferenceTime != 0 {
		t.Errorf("reference date %d time %d do not match %q", ReferenceDate, ReferenceTime, ReferenceString)
	}
}

func TestTimestampLayout(t *testing.T) {
	ts := time.Date(1998, 3, 7, 18, 0, 0, 0, time.UTC).Format(TimestampLayout)
	if ts != "1998-03-07-18" {
		t.Errorf("%s != 1998-03-07-18", ts)
	}
}

// The fill values must be the defaults that the NetCDF library
// assigns to DOUBLE and INT variables.
func TestFillValues(t *testing.T) {
	h := cdf.NewHeader([]string{"x"}, []int{1})
	h.AddVariable("d", []string{"x"}, []float64{0})
	h.AddVariable("i", []string{"x"}, []int32{0})
	h.Define()

	if v, ok := h.FillValue("d").(float64); !ok || v != FillValueF {
		t.Errorf("double fill value %v != %v", h.FillValue("d"), FillValueF)
	}
	if v, ok := h.FillValue("i").(int32); !ok || v != FillValueI {
		t.Errorf("int fill value %v != %v", h.FillValue("i"), FillValueI)
	}
}

func TestNcZero(t *testing.T) {
	tests := []struct {
		ncType string
		want   interface{}
	}{
		{NcDouble, []float64{0}},
		{NcFloat, []float32{0}},
		{NcInt, []int32{0}},
		{NcChar, ""},
	}
	for _, test := range tests {
		t.Run(test.ncType, func(t *testing.T) {
			z, err := NcZero(test.ncType)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(z, test.want) {
				t.Errorf("%#v != %#v", z, test.want)
			}
		})
	}
	if _, err := NcZero("i8"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("want ErrUnknownType, got %v", err)
	}
}

func TestTracers(t *testing.T) {
	if len(RvicTracers) != 1 || RvicTracers[0] != "LIQ" {
		t.Errorf("tracers %v != [LIQ]", RvicTracers)
	}
}
