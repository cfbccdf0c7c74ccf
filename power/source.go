package power

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Unknown Kind = iota
	Battery
	Other
)

func (k Kind) String() string {
	switch k {
	case Battery:
		return "battery"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Source is what the device currently draws power from. Percentage is
// only meaningful for Battery and Name only for Other.
type Source struct {
	Kind       Kind
	Percentage uint8
	Name       string
}

const batteryLabel = "Battery Power"

func BatterySource(percentage uint8) Source {
	return Source{Kind: Battery, Percentage: percentage}
}

func OtherSource(name string) Source {
	return Source{Kind: Other, Name: name}
}

func (s Source) String() string {
	switch s.Kind {
	case Battery:
		return fmt.Sprintf("battery(%d%%)", s.Percentage)
	case Other:
		return fmt.Sprintf("other(%s)", s.Name)
	default:
		return "unknown"
	}
}

// Glyph returns the token for a battery source.
func (s Source) Glyph() (Token, bool) {
	if s.Kind != Battery {
		return 0, false
	}
	return Render(s.Percentage), true
}

// Classify parses the output of `pmset -g batt`:
//
//	Now drawing from 'Battery Power'
//	 -InternalBattery-0 (id=4522083)	87%; discharging; 4:12 remaining present: true
//
// Anything that does not have this shape is Unknown.
func Classify(text string) Source {
	first, second, ok := firstTwoLines(text)
	if !ok {
		return Source{}
	}
	percentage, ok := parsePercentage(second)
	if !ok {
		return Source{}
	}
	label, ok := parseLabel(first)
	if !ok {
		return Source{}
	}
	if label == batteryLabel {
		return BatterySource(percentage)
	}
	return OtherSource(label)
}

func firstTwoLines(text string) (string, string, bool) {
	lines := strings.SplitN(text, "\n", 3)
	if len(lines) < 2 {
		return "", "", false
	}
	return strings.TrimSuffix(lines[0], "\r"), strings.TrimSuffix(lines[1], "\r"), true
}

func parsePercentage(line string) (uint8, bool) {
	head, _, _ := strings.Cut(line, ";")
	fields := strings.Fields(head)
	if len(fields) < 3 {
		return 0, false
	}
	value, ok := strings.CutSuffix(fields[2], "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil || n > 100 {
		return 0, false
	}
	return uint8(n), true
}

func parseLabel(line string) (string, bool) {
	parts := strings.SplitN(line, "'", 3)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}
