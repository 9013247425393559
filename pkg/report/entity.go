package report

// Tier — число заданных и верно отвеченных вопросов одного уровня сложности.
type Tier struct {
	Asked   int `json:"asked"`
	Correct int `json:"correct"`
}

// Scorecard breaks an interview down by difficulty. Any tier may be absent.
type Scorecard struct {
	Easy        *Tier    `json:"easy,omitempty"`
	Medium      *Tier    `json:"medium,omitempty"`
	Hard        *Tier    `json:"hard,omitempty"`
	AccuracyPct *float64 `json:"accuracy_pct,omitempty"`
}

// QA is one asked question with the candidate's answer.
type QA struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	PCorrect   *float64 `json:"p_correct,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	IsCorrect  *bool    `json:"is_correct,omitempty"`
}

// InterviewReport — оценка интервью, сформированная ИИ для конкретного CV.
type InterviewReport struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email"`
	UserID         *int64         `json:"user_id"`
	UserCVID       *int64         `json:"user_cv_id"`
	RoleType       *string        `json:"role_type"`
	RolePosition   *string        `json:"role_position"`
	Status         string         `json:"status"`
	Score          float64        `json:"score"`
	QuestionsAsked int            `json:"questions_asked"`
	AccuracyPct    float64        `json:"accuracy_pct"`
	Suitability    *string        `json:"suitability"`
	IsSuitable     bool           `json:"is_suitable"`
	Summary        *string        `json:"summary"`
	Strengths      []string       `json:"strengths,omitempty"`
	AreasToImprove []string       `json:"areas_to_improve,omitempty"`
	NextSteps      []string       `json:"next_steps,omitempty"`
	Scorecard      *Scorecard     `json:"scorecard,omitempty"`
	History        []QA           `json:"history,omitempty"`
	RawFeedback    map[string]any `json:"raw_feedback,omitempty"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}
