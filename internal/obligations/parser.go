package obligations

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/mandate/pkg/formatting"
)

// ParseJSONL decodes a JSON-Lines obligation response. The content may
// be wrapped in a markdown code fence; double newlines are collapsed
// before splitting. Any line that fails to decode invalidates the whole
// response — there is no partial acceptance.
func ParseJSONL(content string) ([]Obligation, error) {
	content = formatting.ExtractFenced(content)
	content = strings.ReplaceAll(content, "\n\n", "\n")
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("empty obligation response")
	}

	lines := strings.Split(content, "\n")
	results := make([]Obligation, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var o Obligation
		if err := json.Unmarshal([]byte(line), &o); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		results = append(results, o)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no obligations in response")
	}

	return results, nil
}
