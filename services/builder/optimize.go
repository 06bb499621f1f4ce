package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"promptmaster/models"
)

// Optimize asks the model to rewrite each draft field and merges the
// returned fields back into the draft. Fields the model leaves empty are
// kept as they are. Requires at least one non-empty field; with an entirely
// empty draft it records a validation message without calling the model.
func (s *Service) Optimize(ctx context.Context) {
	s.mu.Lock()
	if s.active != ActionNone {
		s.mu.Unlock()
		return
	}
	if draftEmpty(s.draft) {
		s.errMsg = optimizeEmptyMsg
		s.mu.Unlock()
		return
	}
	s.active = ActionOptimize
	s.errMsg = ""
	prompt := fmt.Sprintf(OPTIMIZE_PROMPT, s.draft.Persona, s.draft.Task, s.draft.Context, s.draft.Format)
	s.mu.Unlock()

	log.Printf("[INFO] Requesting draft optimization from the model")
	raw, err := s.client.GenerateStructured(ctx, prompt)

	var rewritten models.PromptDraft
	if err == nil {
		if parseErr := json.Unmarshal([]byte(raw), &rewritten); parseErr != nil {
			err = fmt.Errorf("failed to parse optimization response: %w", parseErr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ActionNone

	if err != nil {
		log.Printf("[ERROR] Draft optimization failed: %v", err)
		s.errMsg = optimizeFailedMsg
		return
	}
	mergeDraft(&s.draft, rewritten)
}
