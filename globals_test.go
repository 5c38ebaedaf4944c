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
	"testing"
	"time"

	"github.com/kr/pretty"
)

// setNow fixes the clock for the duration of the test.
func setNow(t *testing.T, tm time.Time) {
	old := now
	now = func() time.Time { return tm }
	t.Cleanup(func() { now = old })
}

func TestNcGlobalsDefaults(t *testing.T) {
	setNow(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC))
	t.Setenv("LOGNAME", "rvicuser")

	g := NewNcGlobals()
	if g.Conventions != "CF-1.6" {
		t.Errorf("Conventions = %q", g.Conventions)
	}
	if g.Institution != "Univeristy of Washington" {
		t.Errorf("institution = %q", g.Institution)
	}
	if g.References != "Based on the initial model of Lohmann, et al., 1996, Tellus, 48(A), 708-721" {
		t.Errorf("references = %q", g.References)
	}
	if g.Comment != "Output from the RVIC Streamflow Routing Model." {
		t.Errorf("comment = %q", g.Comment)
	}
	if want := "Created: Mon Jan  2 15:04:05 2006 by rvicuser"; g.History != want {
		t.Errorf("%q != %q", g.History, want)
	}
	if g.Title != "" || g.CaseName != "" || g.RvicDomainFile != "" {
		t.Errorf("unexpected non-empty fields: %# v", pretty.Formatter(g))
	}
}

func TestNcGlobalsOverride(t *testing.T) {
	g := NewNcGlobals(Title("T"), CaseName("case1"), DomainFile("domain.nc"))
	if g.Title != "T" {
		t.Errorf("title = %q", g.Title)
	}
	if g.CaseName != "case1" || g.RvicDomainFile != "domain.nc" {
		t.Errorf("overrides not applied: %# v", pretty.Formatter(g))
	}
	if g.Conventions != "CF-1.6" {
		t.Errorf("Conventions = %q", g.Conventions)
	}
}

func TestNcGlobalsUpdate(t *testing.T) {
	setNow(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC))
	g := NewNcGlobals(Title("T"), Source("rvic"))
	before := *g

	setNow(t, time.Date(2010, 12, 25, 8, 30, 0, 0, time.UTC))
	g.Update()
	if want := "Created: Sat Dec 25 08:30:00 2010"; g.History != want {
		t.Errorf("%q != %q", g.History, want)
	}

	after := *g
	after.History = before.History
	if diff := pretty.Diff(before, after); len(diff) != 0 {
		t.Errorf("Update changed fields other than history: %v", diff)
	}
}

func TestCurrentUser(t *testing.T) {
	t.Setenv("LOGNAME", "")
	t.Setenv("USER", "")
	t.Setenv("LNAME", "")
	t.Setenv("USERNAME", "someone")
	if u := currentUser(); u != "someone" {
		t.Errorf("%q != someone", u)
	}
	t.Setenv("USERNAME", "")
	if u := currentUser(); u == "" {
		t.Error("user name should never be empty")
	}
}

func TestNcGlobalsAttributes(t *testing.T) {
	g := &NcGlobals{Title: "T", Conventions: "CF-1.6", RvicUHFile: "uh.csv"}
	want := []Attribute{
		{"title", "T"},
		{"Conventions", "CF-1.6"},
		{"RvicUHFile", "uh.csv"},
	}
	if diff := pretty.Diff(g.Attributes(), want); len(diff) != 0 {
		t.Error(diff)
	}
}
