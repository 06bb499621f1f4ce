package models

// PromptDraft is the in-progress four-pillar prompt specification.
type PromptDraft struct {
	Persona string `json:"persona"`
	Task    string `json:"task"`
	Context string `json:"context"`
	Format  string `json:"format"`
}

// DraftUpdateRequest carries a partial draft edit. Only non-nil fields
// are applied.
type DraftUpdateRequest struct {
	Persona *string `json:"persona"`
	Task    *string `json:"task"`
	Context *string `json:"context"`
	Format  *string `json:"format"`
}

// BuilderState is a snapshot of the builder workflow.
type BuilderState struct {
	Draft            PromptDraft `json:"draft"`
	AssembledPrompt  string      `json:"assembled_prompt"`
	Busy             string      `json:"busy"`
	GenerationResult string      `json:"generation_result"`
	CritiqueResult   string      `json:"critique_result"`
	Error            string      `json:"error"`
}
