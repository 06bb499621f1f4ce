package builder

import (
	"context"
	"log"
)

// Run sends the assembled prompt to the model and stores the generated text.
// It is a no-op when the draft is incomplete or another action is in flight.
func (s *Service) Run(ctx context.Context) {
	s.mu.Lock()
	if s.active != ActionNone || !draftComplete(s.draft) {
		s.mu.Unlock()
		return
	}
	s.active = ActionRun
	s.critique = ""
	s.errMsg = ""
	prompt := Assemble(s.draft)
	s.mu.Unlock()

	log.Printf("[INFO] Running assembled prompt against the model")
	text, err := s.client.GenerateText(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ActionNone

	if err != nil {
		log.Printf("[ERROR] Prompt run failed: %v", err)
		s.errMsg = runFailedMsg
		return
	}
	s.generation = text
}
