/*
   GoBESS - Best Effort Save State container codec
   Copyright (c) 2023, Alexander Vollschwitz

   This file is part of GoBESS.

   GoBESS is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GoBESS is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GoBESS. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

/*
	The package initializer sets up logging based on logrus. The following
	environment variables can be used to configure logging:

		LOG_FORMAT		set to `json` for JSON logging
		LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
		LOG_METHODS		set to non-empty for including methods in log
		LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
*/
func init() {

	log.SetOutput(os.Stdout)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if strings.ToLower(os.Getenv("LOG_FORCE_COLORS")) != "" {
		log.SetFormatter(&log.TextFormatter{
			ForceColors: true,
		})
	}

	if strings.ToLower(os.Getenv("LOG_METHODS")) != "" {
		log.SetReportCaller(true)
	}

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: '%s'; valid levels are: panic, "+
				"fatal, error, warn, info, debug, trace", level)
		} else {
			log.SetLevel(l)
		}
	}
}

//
var (
	UnderTest bool
)

// DieOnError exits the running process if e is not nil. The error gets logged.
func DieOnError(e error) {
	if e != nil {
		fmt.Printf("%v\n", e)
		if UnderTest {
			panic(e.Error())
		} else {
			os.Exit(1)
		}
	}
}

// Die exits the running process, while logging the given message.
func Die(msg string, params ...interface{}) {
	if UnderTest {
		err := fmt.Sprintf(msg, params...)
		fmt.Print(err)
		panic(err)
	} else {
		if len(params) > 0 {
			fmt.Printf(msg, params...)
		} else {
			fmt.Println(msg)
		}
		os.Exit(1)
	}
}

/*
	NewCommand creates a base command instance, wrapping a new Cobra
	command. The exec function is invoked when the command's Execute
	method is called.
*/
func NewCommand(use, short, long string, exec func() error) *Command {
	return &Command{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
			RunE: func(*cobra.Command, []string) error {
				return exec()
			},
			SilenceErrors:         true,
			SilenceUsage:          true,
			DisableFlagsInUseLine: true,
		},
		settings: map[string]*setting{},
	}
}

/*
	Command is a wrapper around Cobra & Viper. Settings added to a
	command are double-bound: they can come from a command line flag or
	from an environment variable, with the flag taking precedence, and a
	required setting that arrived through neither produces an error
	message naming both.
*/
type Command struct {
	//
	cmd *cobra.Command
	//
	settings map[string]*setting
	//
	Args []string
}

/*
	Execute invokes the exec function that was set on this command when
	it was created. If args is of non-zero length, it overrides os.Args.
*/
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		c.cmd.SetArgs(args)
	}
	return c.cmd.Execute()
}

/*
	AddSetting adds a setting to this command. Target is a pointer to
	the variable to which the setting should be bound; string, int, and
	bool targets are supported. Flag specifies the long (double-dash)
	command line flag for the setting, short its short (single-dash)
	version, and env the name of the environment variable that may carry
	this setting. def is a default value for the setting. help carries
	online help info about this setting, and required specifies whether
	this is a mandatory setting.
*/
func (c *Command) AddSetting(target interface{}, flag, short, env string,
	def interface{}, help string, required bool) {

	c.settings[flag] = &setting{
		flag: flag, env: env, required: required, target: target}

	if env != "" {
		help = fmt.Sprintf("%s (%s)", help, env)
	}

	flags := c.cmd.Flags()

	switch t := target.(type) {

	case *string:
		d, _ := def.(string)
		flags.StringVarP(t, flag, short, d, help)

	case *int:
		d, _ := def.(int)
		flags.IntVarP(t, flag, short, d, help)

	case *bool:
		d, _ := def.(bool)
		flags.BoolVarP(t, flag, short, d, help)

	default:
		Die("setting '%s' is of unsupported type", flag)
	}

	bindSetting(flag, env, flags)
}

//
func bindSetting(flag, env string, flags *pflag.FlagSet) {
	viper.BindPFlag(flag, flags.Lookup(flag))
	if env != "" {
		viper.BindEnv(flag, env)
	}
	log.Tracef("added setting: flag=%s, env=%s", flag, env)
}

/*
	ParseSettings handles all settings that have been added thus far via
	the AddSetting method. Afterwards, setting values are available in
	the variables to which they were bound. This should be called at the
	start of the exec function that was set on this command.
*/
func (c *Command) ParseSettings() {
	for _, s := range c.settings {
		DieOnError(s.get())
	}
	c.Args = c.cmd.Flags().Args()
}

//
type setting struct {
	flag     string
	env      string
	required bool
	target   interface{}
}

/*
	get resolves the setting through Viper, so values coming from the
	environment land in the bound variable as well, and enforces
	required settings with a message that names both the flag and the
	environment variable.
*/
func (s *setting) get() error {

	missing := false

	switch t := s.target.(type) {

	case *string:
		*t = viper.GetString(s.flag)
		missing = *t == ""

	case *int:
		*t = viper.GetInt(s.flag)
		missing = *t == 0

	case *bool:
		*t = viper.GetBool(s.flag)
		missing = !*t

	default:
		return fmt.Errorf("setting '%s' is of unsupported type", s.flag)
	}

	log.Tracef("setting %s resolved", s.flag)

	if s.required && missing {
		msg := fmt.Sprintf(
			"you need to specify the --%s command line flag", s.flag)
		if s.env != "" {
			msg = fmt.Sprintf("%s or the %s environment variable", msg, s.env)
		}
		return fmt.Errorf("%s", msg)
	}

	return nil
}
