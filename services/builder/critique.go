package builder

import (
	"context"
	"fmt"
	"log"
)

// Critique asks the model to review the assembled prompt against the four
// pillars. It is a no-op when the draft is incomplete or another action is
// in flight.
func (s *Service) Critique(ctx context.Context) {
	s.mu.Lock()
	if s.active != ActionNone || !draftComplete(s.draft) {
		s.mu.Unlock()
		return
	}
	s.active = ActionCritique
	s.generation = ""
	s.errMsg = ""
	prompt := fmt.Sprintf(CRITIQUE_PROMPT, Assemble(s.draft))
	s.mu.Unlock()

	log.Printf("[INFO] Requesting prompt critique from the model")
	text, err := s.client.GenerateText(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ActionNone

	if err != nil {
		log.Printf("[ERROR] Prompt critique failed: %v", err)
		s.errMsg = critiqueFailedMsg
		return
	}
	s.critique = text
}
