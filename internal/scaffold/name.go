package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks that name is usable as a project name: non-empty and
// made only of lowercase letters, digits and hyphens.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: a project name is required", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must be lowercase, with no spaces (e.g., my-awesome-app)", ErrInvalidName, name)
	}
	return nil
}

var upper = cases.Upper(language.Und)

// DisplayName upper-cases the first character of each hyphen separated
// segment of a project name, e.g. "my-app" becomes "My-App" and "2fa-app"
// becomes "2fa-App".
func DisplayName(name string) string {
	segments := strings.Split(name, "-")
	for i, seg := range segments {
		_, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}
		segments[i] = upper.String(seg[:size]) + seg[size:]
	}
	return strings.Join(segments, "-")
}
