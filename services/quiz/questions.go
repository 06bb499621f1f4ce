package quiz

import "promptmaster/models"

// defaultQuestions is the builtin knowledge check every session starts with.
func defaultQuestions() []models.Question {
	return []models.Question{
		{
			Question:    "Which of these is NOT one of the 4 pillars of an effective prompt?",
			Options:     []string{"Persona", "Task", "Speed", "Context"},
			Correct:     2,
			Explanation: "The 4 pillars are Persona, Task, Context, and Format. Speed depends on the model!",
		},
		{
			Question:    "According to Google's research, how long is the average 'successful' prompt?",
			Options:     []string{"5 words", "9 words", "21 words", "50 words"},
			Correct:     2,
			Explanation: "Successful prompts average 21 words. Most people only use 9, which is often too short for complex tasks.",
		},
		{
			Question:    "If Gemini gives you a result you don't like, what is the best next step?",
			Options:     []string{"Start over completely", "Iterate and ask follow-up questions", "Give up", "Use a different tool"},
			Correct:     1,
			Explanation: "Treat it like a conversation! Ask Gemini to refine, shorten, or change the tone of the output.",
		},
		{
			Question:    "Which specific character allows you to tag/reference your own files in Gemini?",
			Options:     []string{"# (Hashtag)", "@ (At symbol)", "/ (Slash)", "* (Asterisk)"},
			Correct:     1,
			Explanation: "Using the @ symbol allows you to pull context directly from your Google Drive files.",
		},
	}
}
