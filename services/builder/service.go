package builder

import (
	"context"
	"sync"

	"promptmaster/models"
)

// Action identifies the builder operation currently in flight. At most one
// action is active at a time; the empty value means idle.
type Action string

const (
	ActionNone      Action = ""
	ActionRun       Action = "run"
	ActionCritique  Action = "critique"
	ActionOptimize  Action = "optimize"
	ActionRandomize Action = "randomize"
)

// Fixed user-facing failure messages. The underlying cause is logged, never
// shown to the user.
const (
	runFailedMsg       = "Failed to run prompt. Please try again."
	critiqueFailedMsg  = "Failed to get critique. Please try again."
	optimizeFailedMsg  = "Failed to optimize. Try again."
	optimizeEmptyMsg   = "Please fill in at least one field to optimize."
	randomizeFailedMsg = "Failed to generate scenario. Try again."
)

// ModelClient is the slice of the Gemini service the builder workflow uses.
type ModelClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt string) (string, error)
}

// Service holds one builder session: the draft, the single-action busy
// state, and the latest results.
type Service struct {
	client ModelClient

	mu         sync.Mutex
	draft      models.PromptDraft
	active     Action
	generation string
	critique   string
	errMsg     string
}

func NewService(client ModelClient) *Service {
	return &Service{client: client}
}

// UpdateDraft applies a partial edit to the draft. Edits are rejected while
// an action is in flight so optimize/randomize results are never interleaved
// with user edits.
func (s *Service) UpdateDraft(req *models.DraftUpdateRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != ActionNone {
		return false
	}

	if req.Persona != nil {
		s.draft.Persona = *req.Persona
	}
	if req.Task != nil {
		s.draft.Task = *req.Task
	}
	if req.Context != nil {
		s.draft.Context = *req.Context
	}
	if req.Format != nil {
		s.draft.Format = *req.Format
	}
	return true
}

// State returns a snapshot of the workflow. The assembled prompt is derived
// on every read and only present for a complete draft.
func (s *Service) State() models.BuilderState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.BuilderState{
		Draft:            s.draft,
		Busy:             string(s.active),
		GenerationResult: s.generation,
		CritiqueResult:   s.critique,
		Error:            s.errMsg,
	}
	if draftComplete(s.draft) {
		state.AssembledPrompt = Assemble(s.draft)
	}
	return state
}

// mergeDraft overwrites only the fields the model actually returned;
// empty fields in the response leave the current values untouched.
func mergeDraft(dst *models.PromptDraft, src models.PromptDraft) {
	if src.Persona != "" {
		dst.Persona = src.Persona
	}
	if src.Task != "" {
		dst.Task = src.Task
	}
	if src.Context != "" {
		dst.Context = src.Context
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}
