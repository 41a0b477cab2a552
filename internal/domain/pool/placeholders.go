package pool

import "strings"

const (
	PlaceholderName          = "(NAME)"
	PlaceholderAdministrator = "(ADMINISTRATOR)"
)

// Placeholders are the values substituted into a pool message.
type Placeholders struct {
	Name          string
	Administrator string
}

// SubstitutePlaceholders replaces (NAME) and (ADMINISTRATOR) in a single
// left-to-right pass. Substituted values are never scanned again, so a name
// containing a token is emitted literally.
func SubstitutePlaceholders(message string, p Placeholders) string {
	return strings.NewReplacer(
		PlaceholderName, p.Name,
		PlaceholderAdministrator, p.Administrator,
	).Replace(message)
}
