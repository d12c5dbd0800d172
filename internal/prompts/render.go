package prompts

import (
	"fmt"
	"strings"
)

// Extraction renders the obligation-extraction prompt for one document
// segment.
func Extraction(segment string) string {
	var sb strings.Builder
	sb.WriteString(extractInstructions)
	sb.WriteString("\n\nThe segment is as follows: ")
	sb.WriteString(segment)
	return sb.String()
}

// Question renders the question-generation prompt for one regulation.
func Question(regulation string) string {
	var sb strings.Builder
	sb.WriteString(questionInstructions)
	sb.WriteString("\nHere is your data:\n")
	sb.WriteString(regulation)
	return sb.String()
}

// Judgment renders the evaluation prompt for one question, gold answer,
// and user answer triple.
func Judgment(question, goldAnswer, userAnswer string) string {
	var sb strings.Builder
	sb.WriteString(judgeInstructions)
	sb.WriteString("\nHere is your data:\n")
	fmt.Fprintf(&sb, "Question: %s\n", question)
	fmt.Fprintf(&sb, "Gold Answer: %s\n", goldAnswer)
	fmt.Fprintf(&sb, "User Answer: %s", userAnswer)
	return sb.String()
}
