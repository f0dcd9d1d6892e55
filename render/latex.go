// Package render holds the display-string helpers consumed by report
// generators: LaTeX-safe escaping with URL detection, and RFC 822 date
// strings for feeds. The filtering core itself never depends on these; it
// accepts an Escaper so callers choose the output flavor.
package render

import (
	"regexp"
	"strings"
	"time"

	"github.com/teranos/vitae/dates"
)

// Escaper turns a raw label into a safely renderable string.
type Escaper func(string) string

// Identity is the no-op escaper, for consumers that render plain text.
func Identity(s string) string { return s }

var httpRE = regexp.MustCompile(
	`https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,4}\b([-a-zA-Z0-9@:%_\+.~#?&//=]*)`,
)

// LatexSafeURL makes a string that is a URL safe inside a LaTeX \url macro.
func LatexSafeURL(s string) string {
	return strings.ReplaceAll(s, "#", `\#`)
}

// LatexSafe makes a string safe to embed in LaTeX source. Substrings that
// look like URLs are wrapped in \url{...} and the surrounding text is
// escaped recursively.
func LatexSafe(s string) string {
	return latexSafe(s, "url")
}

// LatexSafeWrapped is LatexSafe with a custom wrapping macro for URLs,
// e.g. "href".
func LatexSafeWrapped(s, wrapper string) string {
	return latexSafe(s, wrapper)
}

func latexSafe(s, wrapper string) string {
	if s == "" {
		return s
	}
	if loc := httpRE.FindStringIndex(s); loc != nil {
		return latexSafe(s[:loc[0]], wrapper) +
			`\` + wrapper + `{` + LatexSafeURL(s[loc[0]:loc[1]]) + `}` +
			latexSafe(s[loc[1]:], wrapper)
	}
	r := strings.NewReplacer(
		"&", `\&`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
	)
	return r.Replace(s)
}

// RFC822 formats a year/month/day as an RFC 822 date string. The day
// defaults to the 1st when < 1.
func RFC822(y int, m any, d int) (string, error) {
	t, err := dates.BeginOf(y, m, d)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC1123Z), nil
}

// RFC822Now returns the current UTC time as an RFC 822 date string.
func RFC822Now() string {
	return time.Now().UTC().Format(time.RFC1123Z)
}
