package models

// Pillar is one of the four structural prompt components taught by the app.
type Pillar struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type ProTip struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// LearnContent is the static educational content of the learn section.
type LearnContent struct {
	Heading string   `json:"heading"`
	Intro   string   `json:"intro"`
	Pillars []Pillar `json:"pillars"`
	ProTips []ProTip `json:"pro_tips"`
}
