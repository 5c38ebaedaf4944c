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

// Package rvic holds the constants, calendar conventions and NetCDF
// metadata templates shared by the RVIC streamflow routing model.
// The attribute strings defined here are the format contract of RVIC
// output files and must not be changed.
package rvic

import (
	"errors"
	"fmt"
)

// Version gives the version number.
const Version = "1.1.0"

// Physical constants.
const (
	EarthRadius  = 6.37122e6 // m
	WaterDensity = 1000.     // kg m-3
)

// Area.
const (
	MetersPerKm    = 1000.
	MetersPerMile  = 1609.34
	Meters2PerAcre = 4046.856
)

// Reference time. ReferenceDate and ReferenceTime are ReferenceString
// expressed as YYYYMMDD and seconds of day; changing one requires
// changing all three.
const (
	ReferenceString = "0001-1-1 0:0:0"
	ReferenceDate   = 10101
	ReferenceTime   = 0

	// TimeUnits must stay in days.
	TimeUnits = "days since " + ReferenceString

	// TimestampForm is the strftime form of the timestamps in RVIC
	// file names, and TimestampLayout is the same form as a Go layout.
	TimestampForm   = "%Y-%m-%d-%H"
	TimestampLayout = "2006-01-02-15"

	Calendar = "noleap"
)

// Time conversion.
const (
	HoursPerDay = 24.
	SecsPerHour = 3600.
	MinsPerHour = 60.
	MinsPerDay  = HoursPerDay * MinsPerHour
	SecsPerDay  = HoursPerDay * SecsPerHour
)

// Length.
const (
	MMPerMeter = 1000.
	CMPerMeter = 100.
)

// Precision and NetCDF type codes.
const (
	Precision  = 1.0e-30
	NcDouble   = "f8"
	NcFloat    = "f4"
	NcInt      = "i4"
	NcChar     = "S1"
	MaxNcChars = 256
)

// Fill values. These are the NetCDF default fill values for the DOUBLE
// and INT types.
const (
	FillValueF float64 = 9.969209968386869e+36
	FillValueI int32   = -2147483647
)

// RPointer is the file name prefix of restart pointer files.
const RPointer = "rpointer"

// RvicTracers are the tracers that RVIC routes.
var RvicTracers = [...]string{"LIQ"}

// ErrUnknownType is returned when a NetCDF type code is not one of
// NcDouble, NcFloat, NcInt or NcChar.
var ErrUnknownType = errors.New("rvic: unknown NetCDF type code")

// NcZero returns the zero value used to declare a variable of the
// given NetCDF type code in a cdf.Header.
func NcZero(ncType string) (interface{}, error) {
	switch ncType {
	case NcDouble:
		return []float64{0}, nil
	case NcFloat:
		return []float32{0}, nil
	case NcInt:
		return []int32{0}, nil
	case NcChar:
		return "", nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, ncType)
	}
}
