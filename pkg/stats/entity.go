package stats

// Overview — сводные показатели для дашборда.
// Nil fields were absent in the backend answer and render as a placeholder.
type Overview struct {
	CandidateUsers *int `json:"candidate_users"`
	Applications   *int `json:"applications"`
	JobPositions   *int `json:"job_positions"`
}
