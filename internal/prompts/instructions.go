// Package prompts implements the prompt template engine for mandate.
// Each pipeline stage pairs a fixed instruction block with positional
// payload text to produce a model-ready prompt. Pure formatting; retry
// and dispatch concerns live elsewhere.
package prompts

const extractInstructions = `You will be provided with a segment from a regulatory document. ` +
	`Your task is to extract all structured regulations and obligations from the text. ` +
	`For each identified regulation, include the following fields: ` +
	`"original text" (the exact excerpt from which the regulation is derived), ` +
	`"regulation" (a clear and structured version of the regulation), and ` +
	`"keyword" (a representative term from the regulation, useful for generating follow-up questions. ` +
	`The keyword must appear in the extracted regulation). ` +
	`Respond in JSONL format, with each line following this structure: ` +
	`{"original text": "...", "regulation": "...", "keyword": "..."}.`

const questionInstructions = `Given a single regulation or obligation, generate a meaningful question ` +
	`that tests the user's understanding or knowledge of the regulation to promote compliance. ` +
	`The user would not see the regulation, so the question should be self-contained and in an ` +
	`open-ended format. Also provide the corresponding answer. Make sure the question can be ` +
	`answered directly from the regulation, i.e., the answer should appear in the question. ` +
	`Enclose the question in <question>...</question> tags and the answer in <answer>...</answer> tags.`

const judgeInstructions = `You will be provided with a question, a gold answer, and a user answer. ` +
	`Your task is to evaluate whether the user answer is correct or not. ` +
	`Enclose the judgement (correct or incorrect and your explanation) in <judgement>...</judgement> tags.`
