package util

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// TrapPanic turns a panic raised by Must into a logged error and exit
// status 1. The stack is only shown at debug level.
func TrapPanic() {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			logrus.Error(err)
			if st, ok := err.(stackTracer); ok {
				logrus.Debugf("stacktrace:%+v", st.StackTrace())
			}
		} else {
			logrus.Error(fmt.Sprint(r))
		}
		exit(1)
	}
}

var exit = os.Exit

func Must(err error) {
	if err != nil {
		panic(err)
	}
}
