package candidate

// Candidate — пользователь-кандидат, зарегистрированный в системе.
type Candidate struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CreatedAt        string `json:"created_at"`
	ApplicationCount int    `json:"application_count"`
}

// Page is one slice of the candidate list.
type Page struct {
	Items  []Candidate
	Limit  int
	Offset int
	// Total is -1 when the backend does not report it.
	Total int
}

// HasNext reports whether another page likely exists.
func (p Page) HasNext() bool {
	if p.Total >= 0 {
		return p.Offset+len(p.Items) < p.Total
	}
	return len(p.Items) == p.Limit && p.Limit > 0
}

func (p Page) HasPrev() bool { return p.Offset > 0 }

// ByID matches a candidate row.
func ByID(id string) func(Candidate) bool {
	return func(c Candidate) bool { return c.ID == id }
}
