package battery_status

import (
	"fmt"

	"github.com/dadleyy/battrs/power"
	"github.com/dadleyy/battrs/util"
	e "github.com/pkg/errors"
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"
	"gopkg.in/yaml.v2"
)

type report struct {
	Source     string `yaml:"source"`
	Percentage *uint8 `yaml:"percentage,omitempty"`
	Name       string `yaml:"name,omitempty"`
	Token      string `yaml:"token,omitempty"`
}

func newReport(src power.Source) report {
	r := report{Source: src.Kind.String()}
	switch src.Kind {
	case power.Battery:
		p := src.Percentage
		r.Percentage = &p
		tok, _ := src.Glyph()
		r.Token = tok.String()
	case power.Other:
		r.Name = src.Name
	}
	return r
}

func describe(c cfg) error {
	src, err := power.Measure(c.command)
	if err != nil {
		return e.Wrap(err, "measure power source")
	}
	out, err := yaml.Marshal(newReport(src))
	if err != nil {
		return e.Wrap(err, "marshal report")
	}
	_, err = fmt.Print(string(out))
	return e.Wrap(err, "print report")
}

var describeCmd = &Z.Cmd{
	Name:     `describe`,
	Summary:  `print the parsed power source as YAML`,
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(x *Z.Cmd, _ ...string) error {
		defer util.TrapPanic()
		c, err := getConfig(x.Caller)
		util.Must(e.Wrap(err, "get config"))
		util.Must(describe(c))
		return nil
	},
}
