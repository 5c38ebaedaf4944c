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

// Package rvicutil contains the command-line interface to the RVIC
// shared metadata: printing the calendar table and variable catalog,
// writing empty CF NetCDF files and checking existing ones.
package rvicutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/UW-Hydro/rvic"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives log messages from the commands.
var Log logrus.FieldLogger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to RVIC.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format specifies how the variable catalog is printed,
              either "text" or "toml".`,
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{varsCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the NetCDF file to write.
              It can include environment variables.`,
			shorthand:  "o",
			defaultVal: "rvic.nc",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Variables",
			usage: `
              Variables lists the cataloged variables to include in
              the file, separated by commas or spaces. The default is
              the set of variables in an RVIC history file.`,
			defaultVal: historyVars,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Title",
			usage: `
              Title is the title global attribute.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "CaseName",
			usage: `
              CaseName is the casename global attribute.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Comment",
			usage: `
              Comment is the comment global attribute.`,
			defaultVal: rvic.DefaultComment,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "RvicPourPointsFile",
			usage: `
              RvicPourPointsFile is the path of the pour points file
              the output was derived from.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "RvicUHFile",
			usage: `
              RvicUHFile is the path of the unit hydrograph file
              the output was derived from.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "RvicFdrFile",
			usage: `
              RvicFdrFile is the path of the flow direction file
              the output was derived from.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "RvicDomainFile",
			usage: `
              RvicDomainFile is the path of the domain file
              the output was derived from.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Time",
			usage: `
              Dims.Time is the length of the time dimension.
              Zero makes time the unlimited dimension.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Timesteps",
			usage: `
              Dims.Timesteps is the number of unit hydrograph timesteps.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Lat",
			usage: `
              Dims.Lat is the number of grid rows.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Lon",
			usage: `
              Dims.Lon is the number of grid columns.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Outlets",
			usage: `
              Dims.Outlets is the number of outlet grid cells.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
		{
			name: "Dims.Sources",
			usage: `
              Dims.Sources is the number of source grid cells.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{headerCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("RVIC")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			addFlag(set, option.name, option.shorthand, option.usage, option.defaultVal)
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

// addFlag defines a flag on set with the type of defaultVal. An empty
// shorthand gives a flag with no short form.
func addFlag(set *pflag.FlagSet, name, shorthand, usage string, defaultVal interface{}) {
	switch v := defaultVal.(type) {
	case string:
		set.StringP(name, shorthand, v, usage)
	case []string:
		set.StringSliceP(name, shorthand, v, usage)
	case bool:
		set.BoolP(name, shorthand, v, usage)
	case int:
		set.IntP(name, shorthand, v, usage)
	default:
		panic(fmt.Sprintf("rvic: option %s has unsupported type %T", name, defaultVal))
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(calendarsCmd)
	Root.AddCommand(varsCmd)
	Root.AddCommand(headerCmd)
	Root.AddCommand(checkCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("rvic: problem reading configuration file: %v", err)
		}
	}
	if l, ok := Log.(*logrus.Logger); ok && Cfg.GetBool("verbose") {
		l.Level = logrus.DebugLevel
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "rvic",
	Short: "Shared metadata for the RVIC streamflow routing model.",
	Long: `rvic gives access to the constants, calendar conventions and CF NetCDF
metadata shared by the RVIC streamflow routing model.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'RVIC_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of RVIC.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "RVIC v%s\nvariable catalog %s\n", rvic.Version, rvic.CatalogHash())
	},
	DisableAutoGenTag: true,
}

var calendarsCmd = &cobra.Command{
	Use:   "calendars [name]",
	Short: "Print the calendar key table",
	Long: `calendars prints the calendar key numbers stored in restart files and the
CF calendar names each one stands for. If a calendar name is given, only
its key is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			k, err := rvic.CalendarKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		}
		return printCalendars(cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}

var varsCmd = &cobra.Command{
	Use:   "vars [name...]",
	Short: "Print the variable catalog",
	Long: `vars prints the long name, units and optional flag and range attributes
of the cataloged NetCDF variables. With no arguments all variables are printed.
Use --format=toml for machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = rvic.VarNames()
		}
		return printVars(cmd.OutOrStdout(), Cfg.GetString("format"), names)
	},
	DisableAutoGenTag: true,
}

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Write an empty CF NetCDF file",
	Long: `header writes a NetCDF file holding the RVIC global attributes and the
configured variables with their metadata. Non-record variables are set to
their fill values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		vars, err := checkVariables(Cfg.GetStringSlice("Variables"))
		if err != nil {
			return err
		}
		dims, err := dimsFromConfig(Cfg)
		if err != nil {
			return err
		}
		return WriteHeader(outputFile, globalsFromConfig(Cfg), dims, vars)
	},
	DisableAutoGenTag: true,
}

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Check NetCDF files against the variable catalog",
	Long: `check compares the attributes of every cataloged variable in the given
NetCDF files with the catalog, and checks for the CF Conventions attribute.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, f := range args {
			n, err := CheckFile(os.ExpandEnv(f))
			if err != nil {
				return err
			}
			if n > 0 {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("rvic: %d of %d files do not match the catalog", failed, len(args))
		}
		return nil
	},
	DisableAutoGenTag: true,
}
