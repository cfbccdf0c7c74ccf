package util

import (
	"fmt"
	"regexp"
)

var placeholder = regexp.MustCompile(`{{|}}|{([A-Za-z]\w*)}`)

// Fprint substitutes {name} placeholders from args. Unknown placeholders
// are left as is and {{ / }} escape literal braces.
func Fprint(format string, args map[string]any) string {
	return placeholder.ReplaceAllStringFunc(format, func(s string) string {
		switch s {
		case "{{":
			return "{"
		case "}}":
			return "}"
		}
		if v, ok := args[s[1:len(s)-1]]; ok {
			return fmt.Sprint(v)
		}
		return s
	})
}
