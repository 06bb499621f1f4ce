package quiz

import "promptmaster/models"

// Answer records the selection for the current question and scores it.
// Answering an already-answered question, a finished quiz, or an
// out-of-range choice is a no-op.
func (s *Service) Answer(choice int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.answered {
		return
	}

	q := s.questions[s.current]
	if choice < 0 || choice >= len(q.Options) {
		return
	}

	s.selected = choice
	s.answered = true
	if choice == q.Correct {
		s.score++
	}
}

// Advance moves to the next question. It is only valid once the current
// question is answered; advancing past the last question finishes the quiz.
func (s *Service) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || !s.answered {
		return
	}

	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = -1
		s.answered = false
	} else {
		s.finished = true
	}
}

// Reset restarts the quiz over the current question set, whichever that is.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// reset assumes s.mu is held.
func (s *Service) reset() {
	s.current = 0
	s.score = 0
	s.answered = false
	s.selected = -1
	s.finished = false
}

// State returns a snapshot of the session. The correct index and
// explanation of the current question are only included once it has been
// answered.
func (s *Service) State() models.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.QuizState{
		TotalQuestions: len(s.questions),
		CurrentIndex:   s.current,
		Score:          s.score,
		Answered:       s.answered,
		Finished:       s.finished,
		Generating:     s.generating,
		Error:          s.errMsg,
	}

	if !s.finished {
		q := s.questions[s.current]
		view := &models.QuestionView{
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
		}
		if s.answered {
			correct := q.Correct
			view.Correct = &correct
			view.Explanation = q.Explanation

			selected := s.selected
			state.Selected = &selected
			right := s.selected == q.Correct
			state.SelectedRight = &right
		}
		state.Question = view
	}

	return state
}
