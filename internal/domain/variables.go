package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/declfix/internal/model"
)

// DefaultTarget is the file the fixer rewrites, relative to the working
// directory.
const DefaultTarget m.Path = "src/hooks/useBotMarket.js"

// DefaultVariables is the table of tracked declarations, processed in order.
var DefaultVariables = []m.TrackedVariable{
	{Name: "currentUser", Value: "Vishalsnw"},
	{Name: "currentDateTimeUTC", Value: "2025-06-12 09:29:16"},
	{Name: "currentDate", Value: "2025-06-12"},
	{Name: "currentTime", Value: "09:29:16"},
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateVariables checks that every entry can be matched and rewritten
// round-trip: names must be identifiers, values must fit in a single-quoted
// literal on one line, and no name may repeat.
func ValidateVariables(variables []m.TrackedVariable) error {
	seen := make(map[string]struct{}, len(variables))

	for _, v := range variables {
		if !identifierRe.MatchString(v.Name) {
			return fmt.Errorf("%w: name %q is not an identifier", ErrInvalidVariable, v.Name)
		}

		if strings.ContainsAny(v.Value, "'\r\n") {
			return fmt.Errorf("%w: value of %s must not contain quotes or line breaks", ErrInvalidVariable, v.Name)
		}

		if _, ok := seen[v.Name]; ok {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidVariable, v.Name)
		}

		seen[v.Name] = struct{}{}
	}

	return nil
}
