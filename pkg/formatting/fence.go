package formatting

import (
	"regexp"
	"strings"
)

var fencedBlockRegex = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\s*\n?(.*?)\n?```")

// ExtractFenced returns the body of the first markdown code fence in
// content, with any language tag removed. Content without a fence is
// returned trimmed but otherwise unchanged. Models frequently wrap
// structured output in fences despite instructions not to.
func ExtractFenced(content string) string {
	content = strings.TrimSpace(content)

	matches := fencedBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}

	return content
}
