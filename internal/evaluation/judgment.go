// Package evaluation implements answer grading for mandate.
// It provides the judgment record type, the tagged-text judgment parser,
// and the evaluation agent that grades user answers against gold answers.
package evaluation

// Judgment is the evaluator's determination for one answered question.
// Judgments are derived fresh on each evaluation request and never
// persisted.
type Judgment struct {
	Question   string `json:"question"`
	GoldAnswer string `json:"gold_answer"`
	YourAnswer string `json:"your_answer"`
	Judgment   string `json:"judgment"`
}
