package builder

import (
	"fmt"
	"strings"
	"testing"

	"promptmaster/models"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name     string
		draft    models.PromptDraft
		expected string
	}{
		{
			name: "full draft",
			draft: models.PromptDraft{
				Persona: "Senior Marketing Manager",
				Task:    "Draft a promotional email for our summer sale.",
				Context: "Targeted at existing customers",
				Format:  "a bulleted list with 3 main points",
			},
			expected: "You are a Senior Marketing Manager. Draft a promotional email for our summer sale. Targeted at existing customers. Please format the output as a bulleted list with 3 main points.",
		},
		{
			name: "fields substituted verbatim",
			draft: models.PromptDraft{
				Persona: "p",
				Task:    "t",
				Context: "c",
				Format:  "f",
			},
			expected: "You are a p. t c. Please format the output as f.",
		},
		{
			name: "no escaping or trimming",
			draft: models.PromptDraft{
				Persona: " spaced ",
				Task:    `quoted "task"`,
				Context: "multi\nline",
				Format:  "f.",
			},
			expected: "You are a  spaced . quoted \"task\" multi\nline. Please format the output as f..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Assemble(tt.draft)
			if result != tt.expected {
				t.Errorf("Assemble() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestCritiquePromptEmbedsAssembledPrompt(t *testing.T) {
	draft := models.PromptDraft{Persona: "p", Task: "t", Context: "c", Format: "f"}
	prompt := fmt.Sprintf(CRITIQUE_PROMPT, Assemble(draft))

	if !strings.Contains(prompt, `User's Prompt: "You are a p. t c. Please format the output as f."`) {
		t.Errorf("critique prompt does not embed the quoted assembled prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "1. A rating out of 10.") {
		t.Errorf("critique prompt missing rating instruction: %q", prompt)
	}
}

func TestDraftPredicates(t *testing.T) {
	tests := []struct {
		name     string
		draft    models.PromptDraft
		complete bool
		empty    bool
	}{
		{"all set", models.PromptDraft{Persona: "a", Task: "b", Context: "c", Format: "d"}, true, false},
		{"one missing", models.PromptDraft{Persona: "a", Task: "b", Context: "c"}, false, false},
		{"only one set", models.PromptDraft{Task: "b"}, false, false},
		{"none set", models.PromptDraft{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := draftComplete(tt.draft); got != tt.complete {
				t.Errorf("draftComplete() = %v, expected %v", got, tt.complete)
			}
			if got := draftEmpty(tt.draft); got != tt.empty {
				t.Errorf("draftEmpty() = %v, expected %v", got, tt.empty)
			}
		})
	}
}
