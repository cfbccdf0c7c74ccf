package main

import (
	"os"

	"github.com/dadleyy/battrs/battery_status"
	"github.com/dadleyy/battrs/util"

	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/conf"
	"github.com/rwxrob/help"
	"github.com/rwxrob/vars"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := util.SetupLogger(os.Getenv("BATTRS_LOG_LEVEL")); err != nil {
		logrus.Fatal(err)
	}
	Z.AllowPanic = true

	Cmd.Run()
}

// status comes first so a bare `battrs` prints the glyph.
var Cmd = &Z.Cmd{
	Name:    `battrs`,
	Summary: `battery glyph for status bars`,
	Version: `v0.2.0`,
	Source:  `git@github.com:dadleyy/battrs.git`,

	Commands: []*Z.Cmd{
		battery_status.Cmd,
		help.Cmd, conf.Cmd, vars.Cmd,
	},

	Shortcuts: Z.ArgMap{},

	Description: `
		Prints a single battery glyph when running on battery power.
		Set BATTRS_LOG_LEVEL to debug to see what pmset returned.
		`,
}
