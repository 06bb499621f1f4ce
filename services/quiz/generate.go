package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"promptmaster/models"

	"github.com/samber/lo"
)

const QUIZ_PROMPT = `Create a 5-question multiple choice quiz about "Prompt Engineering for Business".
Focus on concepts like Persona, Task, Context, Format, tone, iteration, and specificity.

Return ONLY a JSON array of objects. Each object must have this exact structure:
{
  "question": "The question text",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correct": 0,
  "explanation": "Why this answer is correct"
}`

// Regenerate replaces the question set with a freshly generated one and
// restarts the quiz. On any failure (transport, parse, or validation) the
// current set and session state are left untouched. Answering stays
// available while generation is pending; a second Regenerate meanwhile is a
// no-op.
func (s *Service) Regenerate(ctx context.Context) {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return
	}
	s.generating = true
	s.errMsg = ""
	s.mu.Unlock()

	log.Printf("[INFO] Requesting a fresh quiz from the model")
	raw, err := s.client.GenerateStructured(ctx, QUIZ_PROMPT)

	var generated []models.Question
	if err == nil {
		if parseErr := json.Unmarshal([]byte(raw), &generated); parseErr != nil {
			err = fmt.Errorf("failed to parse quiz response: %w", parseErr)
		} else if !validQuestionSet(generated) {
			err = fmt.Errorf("invalid quiz format received")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false

	if err != nil {
		log.Printf("[ERROR] Quiz generation failed: %v", err)
		s.errMsg = generateFailedMsg
		return
	}

	log.Printf("[INFO] Replacing question set with %d generated questions", len(generated))
	s.questions = generated
	s.reset()
}

// validQuestionSet requires a non-empty set where every question carries an
// options list.
func validQuestionSet(questions []models.Question) bool {
	if len(questions) == 0 {
		return false
	}
	return lo.EveryBy(questions, func(q models.Question) bool {
		return len(q.Options) > 0
	})
}
