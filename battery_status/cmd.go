package battery_status

import (
	"fmt"

	"github.com/dadleyy/battrs/power"
	"github.com/dadleyy/battrs/util"
	e "github.com/pkg/errors"
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/conf"
	"github.com/rwxrob/help"
	"github.com/rwxrob/vars"
)

var defs = map[string]string{
	"command": `["pmset", "-g", "batt"]`,
	"format":  "{token}",
	"other":   "",
	"unknown": "",
}
var defKeys = util.Keys(defs)

func init() {
	util.Must(Z.Conf.SoftInit())
	util.Must(Z.Vars.SoftInit())
}

type cfg struct {
	command power.Command
	format  string
	other   string
	unknown string
}

func getConfig(x *Z.Cmd) (cfg, error) {
	argv, err := util.Get[[]string](x, "command", defs["command"])
	if err != nil {
		return cfg{}, err
	}
	command, err := power.NewCommand(argv)
	if err != nil {
		return cfg{}, e.Wrap(err, "parse command")
	}
	format, err := util.Get[string](x, "format", defs["format"])
	if err != nil {
		return cfg{}, err
	}
	other, err := util.Get[string](x, "other", defs["other"])
	if err != nil {
		return cfg{}, err
	}
	unknown, err := util.Get[string](x, "unknown", defs["unknown"])
	if err != nil {
		return cfg{}, err
	}
	return cfg{
		command: command,
		format:  format,
		other:   other,
		unknown: unknown,
	}, nil
}

func statusLine(c cfg, src power.Source) string {
	switch src.Kind {
	case power.Battery:
		tok, _ := src.Glyph()
		return util.Fprint(c.format, map[string]any{
			"token":      tok,
			"percentage": src.Percentage,
		})
	case power.Other:
		return util.Fprint(c.other, map[string]any{"name": src.Name})
	default:
		return util.Fprint(c.unknown, nil)
	}
}

func outputBatteryStatus(c cfg) error {
	src, err := power.Measure(c.command)
	if err != nil {
		return e.Wrap(err, "measure power source")
	}
	line := statusLine(c, src)
	if line == "" {
		return nil
	}
	_, err = fmt.Println(line)
	if err != nil {
		return e.Wrap(err, "print battery status")
	}
	return nil
}

func cmd(x *Z.Cmd) error {
	c, err := getConfig(x)
	if err != nil {
		return e.Wrap(err, "get config")
	}
	return outputBatteryStatus(c)
}

var Cmd = &Z.Cmd{
	Name:    `status`,
	Summary: `print a battery glyph for the current charge`,
	Commands: []*Z.Cmd{
		help.Cmd, vars.Cmd, conf.Cmd,
		initCmd, describeCmd,
	},
	Call: func(x *Z.Cmd, args ...string) error {
		defer util.TrapPanic()
		util.Must(cmd(x))
		return nil
	},
	Shortcuts: util.ShortcutsFromDefs(defKeys),

	Description: `
		The {{cmd .Name}} command runs pmset -g batt and prints one glyph
		out of a ramp of ten when the machine is running on battery. Nothing
		is printed on external power or when the output cannot be
		understood, unless the other or unknown formats are set.

		    command - query command as a list (default: ["pmset", "-g", "batt"])
		    format  - battery line, {token} and {percentage} (default: {token})
		    other   - external power line, {name}
		    unknown - line for unrecognized output
	`,
}

var initCmd = &Z.Cmd{
	Name:     `init`,
	Summary:  `sets all values to defaults`,
	Commands: []*Z.Cmd{help.Cmd},

	Call: func(x *Z.Cmd, _ ...string) error {
		for _, k := range defKeys {
			v, _ := x.Caller.C(k)
			if v == "null" || v == "" {
				v = defs[k]
			}
			if err := x.Caller.Set(k, v); err != nil {
				return e.Wrapf(err, "set %s", k)
			}
		}
		return nil
	},
}
