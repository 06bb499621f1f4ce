package quiz

import (
	"context"
	"sync"

	"promptmaster/models"
)

const generateFailedMsg = "Failed to generate quiz. Using default questions."

// ModelClient is the slice of the Gemini service the quiz workflow uses.
type ModelClient interface {
	GenerateStructured(ctx context.Context, prompt string) (string, error)
}

// Service holds one quiz session: the active question set and the
// progress through it.
type Service struct {
	client ModelClient

	mu         sync.Mutex
	questions  []models.Question
	current    int
	score      int
	answered   bool
	selected   int
	finished   bool
	generating bool
	errMsg     string
}

func NewService(client ModelClient) *Service {
	return &Service{
		client:    client,
		questions: defaultQuestions(),
		selected:  -1,
	}
}
