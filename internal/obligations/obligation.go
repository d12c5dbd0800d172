// Package obligations implements obligation extraction for mandate.
// It provides the obligation record type, the JSONL response parser,
// and the extraction agent that turns a document segment into a list
// of structured obligations.
package obligations

// Obligation is a structured regulatory requirement extracted from
// document text. Keyword is instructed to be a substring of Regulation;
// the parser does not enforce this, so treat it as a should-hold
// property rather than a guarantee.
type Obligation struct {
	OriginalText string `json:"original text"`
	Regulation   string `json:"regulation"`
	Keyword      string `json:"keyword"`
}
