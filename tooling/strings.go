package tooling

import "strings"

// SplitFirstLine splits text at the first line break. The break itself is
// consumed: neither return value contains it. Text without a line break
// comes back unchanged as the first value.
func SplitFirstLine(text string) (string, string) {
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return text, ""
	}
	return strings.TrimSuffix(text[:i], "\r"), text[i+1:]
}

// StripLeadingSpace drops any whitespace prefix (spaces, tabs and line
// breaks) so that header parsing starts at the first real character.
func StripLeadingSpace(text string) string {
	return strings.TrimLeft(text, " \t\r\n")
}
