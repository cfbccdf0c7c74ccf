package util

import (
	"time"

	e "github.com/pkg/errors"
	Z "github.com/rwxrob/bonzai/z"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// Parse decodes a cached variable. Strings are taken verbatim, durations
// use time.ParseDuration and everything else is YAML (so JSON works too).
func Parse[T any](s string) (T, error) {
	var res T
	switch p := any(&res).(type) {
	case *string:
		*p = s
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return res, err
		}
		*p = d
	default:
		if err := yaml.UnmarshalStrict([]byte(s), &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Get reads key from the vars of x, falling back to def when it has not
// been set yet.
func Get[T any](x *Z.Cmd, key string, def string) (T, error) {
	s, err := x.Get(key)
	if err != nil {
		return *new(T), e.Wrapf(err, "get %s", key)
	}
	if s == "" {
		s = def
	}
	res, err := Parse[T](s)
	if err != nil {
		return res, e.Wrapf(err, "parse %s as %T", key, res)
	}
	return res, nil
}

func Keys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func ShortcutsFromDefs(keys []string) Z.ArgMap {
	shortcuts := make(Z.ArgMap, len(keys))
	for _, k := range keys {
		shortcuts[k] = []string{`var`, `set`, k}
	}
	return shortcuts
}
