package questions

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	questionRegex = regexp.MustCompile(`(?s)<question>(.*?)</question>`)
	answerRegex   = regexp.MustCompile(`(?s)<answer>(.*?)</answer>`)
)

// ParseTagged extracts one question/answer pair from each generation
// output. Every item must contain both a <question> and an <answer>
// span; a single miss invalidates the entire batch so the caller can
// regenerate it whole.
func ParseTagged(outputs []string) ([]QA, error) {
	results := make([]QA, len(outputs))

	for i, output := range outputs {
		q := questionRegex.FindStringSubmatch(output)
		if q == nil {
			return nil, fmt.Errorf("item %d: missing <question> span", i)
		}

		a := answerRegex.FindStringSubmatch(output)
		if a == nil {
			return nil, fmt.Errorf("item %d: missing <answer> span", i)
		}

		results[i] = QA{
			Question: strings.TrimSpace(q[1]),
			Answer:   strings.TrimSpace(a[1]),
		}
	}

	return results, nil
}
