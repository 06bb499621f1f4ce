package builder

import (
	"fmt"

	"promptmaster/models"
)

const (
	// PROMPT_TEMPLATE must match the original app byte for byte, including
	// punctuation and spacing.
	PROMPT_TEMPLATE = "You are a %s. %s %s. Please format the output as %s."

	CRITIQUE_PROMPT = `Act as a prompt engineering expert. Analyze the following prompt based on the "4 Pillars" framework (Persona, Task, Context, Format).
User's Prompt: "%s"
Please provide:
1. A rating out of 10.
2. Specific advice on how to improve the Persona, Task, Context, or Format.
3. A rewritten, optimized version of the prompt.`

	OPTIMIZE_PROMPT = `Act as an expert prompt engineer. I have a draft prompt broken into 4 parts.
Please rewrite each part to be more specific, detailed, and effective, while keeping the original intent.

Current Draft:
Persona: %s
Task: %s
Context: %s
Format: %s

Return ONLY a JSON object with the keys: "persona", "task", "context", "format".`

	SCENARIO_PROMPT = `Generate a realistic, professional scenario for a user to practice writing AI prompts.
Create a "Persona", "Task", "Context", and "Format" for this scenario.
The scenario should be for a business context (e.g., Marketing, HR, Engineering, Sales).

Return ONLY a JSON object with the keys: "persona", "task", "context", "format".`
)

// Assemble renders a complete draft through the fixed four-pillar template.
// Callers check completeness; no validation happens here.
func Assemble(draft models.PromptDraft) string {
	return fmt.Sprintf(PROMPT_TEMPLATE, draft.Persona, draft.Task, draft.Context, draft.Format)
}

func draftComplete(d models.PromptDraft) bool {
	return d.Persona != "" && d.Task != "" && d.Context != "" && d.Format != ""
}

func draftEmpty(d models.PromptDraft) bool {
	return d.Persona == "" && d.Task == "" && d.Context == "" && d.Format == ""
}
