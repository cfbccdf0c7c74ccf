package power

import (
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	e "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner produces the raw text of a power status query.
type Runner interface {
	Output() ([]byte, error)
}

type Command struct {
	Name string
	Args []string
}

var DefaultCommand = Command{Name: "pmset", Args: []string{"-g", "batt"}}

func NewCommand(argv []string) (Command, error) {
	if len(argv) == 0 {
		return Command{}, e.New("empty command")
	}
	return Command{Name: argv[0], Args: argv[1:]}, nil
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output runs the command and returns its stdout. Only a failure to start
// is an error; a non-zero exit status still yields whatever was printed.
func (c Command) Output() ([]byte, error) {
	out, err := exec.Command(c.Name, c.Args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logrus.WithFields(logrus.Fields{
			"command": c.String(),
			"code":    exitErr.ExitCode(),
		}).Debug("command exited with non-zero status")
		return out, nil
	}
	if err != nil {
		return nil, e.Wrapf(err, "run %s", c)
	}
	return out, nil
}

// Measure runs r and classifies its output. Errors only come from running
// r or from output that is not valid UTF-8.
func Measure(r Runner) (Source, error) {
	out, err := r.Output()
	if err != nil {
		return Source{}, e.Wrap(err, "query power status")
	}
	if !utf8.Valid(out) {
		return Source{}, e.New("power status output is not valid UTF-8")
	}
	src := Classify(string(out))
	logrus.WithField("source", src).Debug("classified power status")
	return src, nil
}
