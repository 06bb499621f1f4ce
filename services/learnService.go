package services

import "promptmaster/models"

// LearnService serves the static educational content of the learn section.
type LearnService struct{}

func NewLearnService() *LearnService {
	return &LearnService{}
}

func (s *LearnService) Content() models.LearnContent {
	return models.LearnContent{
		Heading: "The 4 Pillars of a Perfect Prompt",
		Intro:   "Just like a conversation, a good prompt needs structure. Effective prompts usually contain four key ingredients.",
		Pillars: []models.Pillar{
			{
				Title:       "1. Persona",
				Description: "Who is the AI acting as?",
				Example:     "You are an expert Project Manager...",
			},
			{
				Title:       "2. Task",
				Description: "What do you need the AI to do? (The Verb)",
				Example:     "Draft an email... Summarize this report...",
			},
			{
				Title:       "3. Context",
				Description: "What background info is needed?",
				Example:     "The tone should be professional. The audience is new hires...",
			},
			{
				Title:       "4. Format",
				Description: "How do you want the result to look?",
				Example:     "Limit to 3 bullet points. Create a table...",
			},
		},
		ProTips: []models.ProTip{
			{
				Label: "LENGTH",
				Text:  "The most successful prompts average around 21 words. Don't be too brief!",
			},
			{
				Label: "FILES",
				Text:  "Use your own documents. In Gemini, typing \"@\" lets you reference specific files for context.",
			},
			{
				Label: "ITERATE",
				Text:  "Treat it like a chat. If the first output isn't perfect, ask follow-up questions to refine it.",
			},
		},
	}
}
