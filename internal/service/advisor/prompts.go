package advisor

import "fmt"

const chatSystemPrompt = `You are Vadea's study advisor. You help a student plan revision,
explain concepts from their flashcards, and suggest how to use spaced repetition well.
Answer concisely in the language the student writes in.`

const flashcardsSystemPrompt = `You turn study material into flashcards.
Each card tests one fact. The front is a question or cue, the back is the short answer.`

func flashcardsPrompt(sourceText string, count int) string {
	return fmt.Sprintf(`Create up to %d flashcards from the material below.

Output ONLY a JSON array, no markdown, no explanations:
[{"front": "<question>", "back": "<answer>", "tags": ["<topic>"]}]

Material:
%s`, count, sourceText)
}
