package grading

import "fmt"

// BuildPrompt embeds the question and the student's answer verbatim in
// a fixed examiner prompt. The prompt demands strict JSON in the two
// shapes ParseVerdict understands, strict on conceptual correctness and
// lenient about grammar and formatting.
func BuildPrompt(question, answer string) string {
	return fmt.Sprintf(`You are a strict but fair computer programming examiner grading a student's answer.

Question: %s

Student's Answer: %s

Grade this answer. Respond ONLY with a valid JSON object in exactly this format:
- If the answer is correct or substantially correct: {"status": "Correct"}
- If the answer is wrong or incomplete: {"status": "Incorrect", "hint": "One short, helpful hint to guide the student (max 20 words)"}

Be strict: vague or incomplete answers should be marked Incorrect. But do not penalise for minor grammar or formatting issues — focus on conceptual correctness.
Respond with JSON only. No extra text.`, question, answer)
}
