package tin

import "strings"

// Template describes how a cleaned value is rendered for display. A '#' in
// the pattern consumes one character of the value; any other rune is emitted
// literally.
type Template struct {
	pattern      string
	placeholders int
}

// NewTemplate parses a pattern string into a Template.
func NewTemplate(pattern string) Template {
	return Template{
		pattern:      pattern,
		placeholders: strings.Count(pattern, "#"),
	}
}

// Placeholders returns the number of value characters the template consumes.
func (t Template) Placeholders() int {
	return t.placeholders
}

// Render applies the template to a cleaned value. Values shorter than the
// placeholder count are left-padded with '0' first, so jurisdictions with a
// short legacy form always display the full canonical width.
//
// Rendering a value longer than the placeholder count is undefined; callers
// must check length via Validate before formatting.
func (t Template) Render(value string) string {
	if pad := t.placeholders - len(value); pad > 0 {
		value = strings.Repeat("0", pad) + value
	}
	var b strings.Builder
	b.Grow(len(t.pattern))
	next := 0
	for _, r := range t.pattern {
		if r != '#' {
			b.WriteRune(r)
			continue
		}
		if next < len(value) {
			b.WriteByte(value[next])
			next++
		}
	}
	return b.String()
}
