package diff

import "strings"

// SplitLines breaks file content into its line sequence. Lines are
// terminated by "\n" with an optional preceding "\r"; a trailing line
// terminator does not produce an empty final line. Empty content yields an
// empty sequence.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
