package main

import "strings"

// Inline notations survey authors can use in spreadsheet values, and the
// markup each one expands to. The tags match what the survey frontend
// styles, so they are fixed.
const (
	boldToken = "**"
	boldOpen  = "<strong>"
	boldClose = "</strong>"

	obliqueToken = "__"
	obliqueOpen  = `<span class="_pale _oblique">`
	obliqueClose = "</span>"

	greenToken = "_green_"
	greenOpen  = `<span style="color: green;">`
	greenClose = "</span>"

	redToken = "_red_"
	redOpen  = `<span style="color: red;">`
	redClose = "</span>"

	lineBreak = "<br />"

	nameToken       = "[nom]"
	namePlaceholder = "{{nickname}}"
)

// notations lists the inline pairs in the order they are applied. Each
// replacement operates on the output of the previous one, so the order
// matters when tokens share substrings.
var notations = []struct {
	token, open, closing string
}{
	{boldToken, boldOpen, boldClose},
	{obliqueToken, obliqueOpen, obliqueClose},
	{greenToken, greenOpen, greenClose},
	{redToken, redOpen, redClose},
}

// replaceBalanced rewrites occurrences of token alternately with the open
// and closing tags, left to right. When the token count is odd the string
// is returned unchanged, so the output never contains an unclosed tag.
func replaceBalanced(s, token, open, closing string) string {
	if strings.Count(s, token)%2 != 0 {
		return s
	}
	var b strings.Builder
	opening := true
	for {
		i := strings.Index(s, token)
		if i < 0 {
			break
		}
		b.WriteString(s[:i])
		if opening {
			b.WriteString(open)
		} else {
			b.WriteString(closing)
		}
		opening = !opening
		s = s[i+len(token):]
	}
	b.WriteString(s)
	return b.String()
}

// replaceNotations rewrites authoring notations into their HTML form:
// newlines become explicit line breaks, then each notation pair is applied
// in a fixed sequence.
func replaceNotations(s string) string {
	s = strings.ReplaceAll(s, "\n", lineBreak)
	for _, n := range notations {
		s = replaceBalanced(s, n.token, n.open, n.closing)
	}
	return s
}

// rewritePlaceholders converts the name-insertion marker to the runtime
// interpolation form. This runs for every value, markdown or not.
func rewritePlaceholders(s string) string {
	return strings.ReplaceAll(s, nameToken, namePlaceholder)
}
