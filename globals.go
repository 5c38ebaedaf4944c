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
	"os"
	"os/user"
	"time"

	"github.com/ctessum/cdf"
)

// Default global attribute values.
const (
	DefaultInstitution = "Univeristy of Washington"
	DefaultReferences  = "Based on the initial model of Lohmann, et al., 1996, Tellus, 48(A), 708-721"
	DefaultComment     = "Output from the RVIC Streamflow Routing Model."
	DefaultConventions = "CF-1.6"
)

// unknownUser stands in for the user name when it cannot be determined.
const unknownUser = "unknown"

// now is replaced in tests.
var now = time.Now

// NcGlobals holds the global attributes of an RVIC NetCDF file.
// Only History changes after construction, through Update.
type NcGlobals struct {
	Title       string
	CaseName    string
	History     string
	Institution string
	Source      string
	References  string
	Comment     string
	Conventions string

	// Paths of the input files the output was derived from.
	RvicPourPointsFile string
	RvicUHFile         string
	RvicFdrFile        string
	RvicDomainFile     string
}

// A GlobalsOption overrides one default field of an NcGlobals.
type GlobalsOption func(*NcGlobals)

// Title sets the title attribute.
func Title(s string) GlobalsOption { return func(g *NcGlobals) { g.Title = s } }

// CaseName sets the casename attribute.
func CaseName(s string) GlobalsOption { return func(g *NcGlobals) { g.CaseName = s } }

// History sets the history attribute.
func History(s string) GlobalsOption { return func(g *NcGlobals) { g.History = s } }

// Institution sets the institution attribute.
func Institution(s string) GlobalsOption { return func(g *NcGlobals) { g.Institution = s } }

// Source sets the source attribute.
func Source(s string) GlobalsOption { return func(g *NcGlobals) { g.Source = s } }

// References sets the references attribute.
func References(s string) GlobalsOption { return func(g *NcGlobals) { g.References = s } }

// Comment sets the comment attribute.
func Comment(s string) GlobalsOption { return func(g *NcGlobals) { g.Comment = s } }

// Conventions sets the Conventions attribute.
func Conventions(s string) GlobalsOption { return func(g *NcGlobals) { g.Conventions = s } }

// PourPointsFile sets the RvicPourPointsFile attribute.
func PourPointsFile(s string) GlobalsOption { return func(g *NcGlobals) { g.RvicPourPointsFile = s } }

// UHFile sets the RvicUHFile attribute.
func UHFile(s string) GlobalsOption { return func(g *NcGlobals) { g.RvicUHFile = s } }

// FdrFile sets the RvicFdrFile attribute.
func FdrFile(s string) GlobalsOption { return func(g *NcGlobals) { g.RvicFdrFile = s } }

// DomainFile sets the RvicDomainFile attribute.
func DomainFile(s string) GlobalsOption { return func(g *NcGlobals) { g.RvicDomainFile = s } }

// NewNcGlobals returns global attributes with the defaults filled in
// and then the options applied.
func NewNcGlobals(opts ...GlobalsOption) *NcGlobals {
	g := &NcGlobals{
		History:     "Created: " + ctime(now()) + " by " + currentUser(),
		Institution: DefaultInstitution,
		References:  DefaultReferences,
		Comment:     DefaultComment,
		Conventions: DefaultConventions,
	}
	if len(os.Args) > 0 {
		g.Source = os.Args[0]
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Update stamps History with the current time. It should be called
// right before the attributes are written to a file.
func (g *NcGlobals) Update() {
	g.History = "Created: " + ctime(now())
}

// Attributes returns the non-empty global attributes in the order
// they are written to a file.
func (g *NcGlobals) Attributes() []Attribute {
	all := []Attribute{
		{"title", g.Title},
		{"casename", g.CaseName},
		{"history", g.History},
		{"institution", g.Institution},
		{"source", g.Source},
		{"references", g.References},
		{"comment", g.Comment},
		{"Conventions", g.Conventions},
		{"RvicPourPointsFile", g.RvicPourPointsFile},
		{"RvicUHFile", g.RvicUHFile},
		{"RvicFdrFile", g.RvicFdrFile},
		{"RvicDomainFile", g.RvicDomainFile},
	}
	return nonEmpty(all)
}

// AddTo adds the global attributes to h, which must be mutable.
func (g *NcGlobals) AddTo(h *cdf.Header) {
	for _, a := range g.Attributes() {
		h.AddAttribute("", a.Name, a.Value)
	}
}

// ReadNcGlobals reads the global attributes from h. Attributes that
// are missing or are not text are left empty.
func ReadNcGlobals(h *cdf.Header) *NcGlobals {
	s := func(a string) string {
		v, _ := h.GetAttribute("", a).(string)
		return v
	}
	return &NcGlobals{
		Title:              s("title"),
		CaseName:           s("casename"),
		History:            s("history"),
		Institution:        s("institution"),
		Source:             s("source"),
		References:         s("references"),
		Comment:            s("comment"),
		Conventions:        s("Conventions"),
		RvicPourPointsFile: s("RvicPourPointsFile"),
		RvicUHFile:         s("RvicUHFile"),
		RvicFdrFile:        s("RvicFdrFile"),
		RvicDomainFile:     s("RvicDomainFile"),
	}
}

// ctime formats t the way the C library ctime function does.
func ctime(t time.Time) string { return t.Format(time.ANSIC) }

// currentUser returns the login name of the invoking user, checking the
// environment first and then the account database.
func currentUser() string {
	for _, env := range []string{"LOGNAME", "USER", "LNAME", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return unknownUser
}
