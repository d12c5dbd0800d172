package evaluation

import (
	"fmt"
	"regexp"
	"strings"
)

var judgementRegex = regexp.MustCompile(`(?s)<judgement>(.*?)</judgement>`)

// ParseJudgments extracts one judgement span from each generation
// output. A missing span in any item invalidates the entire batch.
func ParseJudgments(outputs []string) ([]string, error) {
	results := make([]string, len(outputs))

	for i, output := range outputs {
		m := judgementRegex.FindStringSubmatch(output)
		if m == nil {
			return nil, fmt.Errorf("item %d: missing <judgement> span", i)
		}
		results[i] = strings.TrimSpace(m[1])
	}

	return results, nil
}
