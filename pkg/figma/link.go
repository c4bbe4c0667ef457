package figma

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidLink is returned when a file key cannot be found in a link.
var ErrInvalidLink = errors.New("figma: invalid link format")

var fileKeyPattern = regexp.MustCompile(`(?:file|design)/([a-zA-Z0-9]+)`)

// ParseLink returns the file key embedded in a Figma file or design link.
func ParseLink(link string) (string, error) {
	match := fileKeyPattern.FindStringSubmatch(strings.TrimSpace(link))
	if len(match) < 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidLink, link)
	}
	return match[1], nil
}
