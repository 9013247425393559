package jobs

import "strings"

// JobType — категория вакансий (Backend, QA, ...). Ids are kept as strings
// because the backend sends them as numbers or strings.
type JobType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Posting — открытая позиция. TypeName is what the list displays; TypeID is
// what payloads send. Both are resolved against the JobType list.
type Posting struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	TypeName string `json:"type"`
	TypeID   string `json:"type_id,omitempty"`
}

// PostingDraft is the posting dialog's form state.
type PostingDraft struct {
	ID       string `form:"id"`
	Position string `form:"position" validate:"required,max=200"`
	TypeID   string `form:"type_id" validate:"required"`
	TypeName string `form:"type_name"`
}

// Ready reports whether the draft may be submitted.
func (d PostingDraft) Ready() bool {
	return strings.TrimSpace(d.Position) != "" && strings.TrimSpace(d.TypeID) != ""
}

// Trimmed returns the draft with surrounding whitespace removed.
func (d PostingDraft) Trimmed() PostingDraft {
	d.ID = strings.TrimSpace(d.ID)
	d.Position = strings.TrimSpace(d.Position)
	d.TypeID = strings.TrimSpace(d.TypeID)
	d.TypeName = strings.TrimSpace(d.TypeName)
	return d
}

// TypeDraft is the job type dialog's form state.
type TypeDraft struct {
	ID   string `form:"id"`
	Name string `form:"name" validate:"required,max=120"`
}

func (d TypeDraft) Ready() bool { return strings.TrimSpace(d.Name) != "" }

// Board is everything the postings page needs.
type Board struct {
	Types    []JobType
	Postings []Posting
}

// PostingByID matches a posting row.
func PostingByID(id string) func(Posting) bool {
	return func(p Posting) bool { return p.ID == id }
}

// TypeByID matches a job type row.
func TypeByID(id string) func(JobType) bool {
	return func(t JobType) bool { return t.ID == id }
}
