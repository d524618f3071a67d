// Package extract pulls named, tag-delimited sections out of free-text Suada
// responses. Extraction never fails: a missing or malformed tag yields the
// type-appropriate empty value.
package extract

import (
	"regexp"
	"strings"
)

// Section returns the trimmed content of the first <name>...</name> block.
// Matching is case-insensitive, spans newlines, and is non-greedy: the first
// closing tag after the first opening tag terminates the match, so nested
// same-name tags truncate. Returns "" when the tag is absent.
func Section(text, name string) string {
	re := regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(name) + `>(.*?)</` + regexp.QuoteMeta(name) + `>`)
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// Metrics parses the <metrics> section into key/value pairs. Each line splits
// on its first colon; additional colons stay in the value. Lines without a
// colon are skipped, and a later duplicate key overwrites an earlier one.
func Metrics(text string) map[string]string {
	metrics := map[string]string{}

	content := Section(text, "metrics")
	if content == "" {
		return metrics
	}

	for _, line := range strings.Split(content, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		metrics[key] = value
	}

	return metrics
}

// List parses a list-type section (insights, recommendations, risks) into its
// non-blank lines, trimmed, in source order.
func List(text, name string) []string {
	items := []string{}

	content := Section(text, name)
	if content == "" {
		return items
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}

	return items
}
