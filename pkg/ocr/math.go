package ocr

import (
	"regexp"
	"strings"
)

var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\$([\s\S]+?)\$\$`),
	regexp.MustCompile(`\$([^$]+?)\$`),
	regexp.MustCompile(`\\\[([\s\S]+?)\\\]`),
	regexp.MustCompile(`\\\(([\s\S]+?)\\\)`),
}

var inequalityReplacer = strings.NewReplacer(
	"<=", ` \le `,
	">=", ` \ge `,
	"≤", ` \le `,
	"≥", ` \ge `,
	"<", ` \lt `,
	">", ` \gt `,
)

// EscapeMath rewrites inequality signs inside math spans as LaTeX commands
// so they are not taken for HTML tags.
func EscapeMath(md string) string {
	for _, pattern := range mathPatterns {
		md = replaceGroup(pattern, md, inequalityReplacer.Replace)
	}

	return md
}

func replaceGroup(pattern *regexp.Regexp, s string, fn func(string) string) string {
	matches := pattern.FindAllStringSubmatchIndex(s, -1)

	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0

	for _, m := range matches {
		b.WriteString(s[last:m[2]])
		b.WriteString(fn(s[m[2]:m[3]]))

		last = m[3]
	}

	b.WriteString(s[last:])

	return b.String()
}
