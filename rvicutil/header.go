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

	"github.com/UW-Hydro/rvic"
	"github.com/ctessum/cdf"
	"github.com/sirupsen/logrus"
)

// WriteHeader writes an empty NetCDF file to outputFile holding the
// global attributes g and the variables vars.
func WriteHeader(outputFile string, g *rvic.NcGlobals, d rvic.Dims, vars []string) error {
	h, err := rvic.NewHeader(g, d, vars...)
	if err != nil {
		return err
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("rvic: creating output file: %v", err)
	}
	if err = rvic.WriteEmpty(f, h); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("rvic: closing output file: %v", err)
	}
	Log.WithFields(logrus.Fields{
		"file":      outputFile,
		"variables": len(vars),
	}).Info("wrote NetCDF file")
	return nil
}

// CheckFile checks the NetCDF file against the variable catalog and logs
// every mismatch. It returns the number of mismatches.
func CheckFile(file string) (int, error) {
	r, err := os.Open(file)
	if err != nil {
		return 0, fmt.Errorf("rvic: opening NetCDF file %s: %v", file, err)
	}
	defer r.Close()
	f, err := cdf.Open(r)
	if err != nil {
		return 0, fmt.Errorf("rvic: opening NetCDF file %s: %v", file, err)
	}

	errs := rvic.Check(f.Header)
	for _, e := range errs {
		Log.WithField("file", file).Warn(e)
	}
	var cataloged int
	for _, v := range f.Header.Variables() {
		if _, ok := rvic.LookupVar(v); ok {
			cataloged++
		} else {
			Log.WithFields(logrus.Fields{"file": file, "variable": v}).Debug("variable not cataloged")
		}
	}
	Log.WithFields(logrus.Fields{
		"file":       file,
		"cataloged":  cataloged,
		"mismatches": len(errs),
	}).Info("checked NetCDF file")
	return len(errs), nil
}
