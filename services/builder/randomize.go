package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"promptmaster/models"
)

// Randomize fills the draft from a model-generated practice scenario. It has
// no precondition on the draft; like Optimize, only fields present in the
// response are overwritten.
func (s *Service) Randomize(ctx context.Context) {
	s.mu.Lock()
	if s.active != ActionNone {
		s.mu.Unlock()
		return
	}
	s.active = ActionRandomize
	s.errMsg = ""
	s.mu.Unlock()

	log.Printf("[INFO] Requesting practice scenario from the model")
	raw, err := s.client.GenerateStructured(ctx, SCENARIO_PROMPT)

	var scenario models.PromptDraft
	if err == nil {
		if parseErr := json.Unmarshal([]byte(raw), &scenario); parseErr != nil {
			err = fmt.Errorf("failed to parse scenario response: %w", parseErr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ActionNone

	if err != nil {
		log.Printf("[ERROR] Scenario generation failed: %v", err)
		s.errMsg = randomizeFailedMsg
		return
	}
	mergeDraft(&s.draft, scenario)
}
