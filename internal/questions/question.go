// Package questions implements question generation for mandate.
// It provides the question/answer pair type, the tagged-text response
// parser, the generation agent, and the system that persists the latest
// gold answer set for session capture.
package questions

import "github.com/JaimeStill/mandate/internal/obligations"

// QA pairs a generated comprehension question with its gold answer.
// The answer is instructed to be derivable from the source regulation.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateCommand carries the regulations to generate questions from.
// One question is produced per regulation, order-preserving.
type GenerateCommand struct {
	Regulations []obligations.Obligation `json:"regulations"`
}
