package application

import "errors"

var ErrNotFound = errors.New("application not found")

// Application — заявка кандидата на позицию, как её отдаёт бэкенд.
// Identified by (UserID, UserCVID); UserCVID alone is unique per list.
type Application struct {
	UserID      int64  `json:"user_id"`
	UserCVID    int64  `json:"user_cv_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	JobType     string `json:"job_type"`
	JobPosition string `json:"job_position"`
	CVURL       string `json:"cv_url"`
	Feedback    string `json:"feedback,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ByCV matches the row with the given cv id.
func ByCV(cvID int64) func(Application) bool {
	return func(a Application) bool { return a.UserCVID == cvID }
}

// Find returns the row with the given cv id, or ErrNotFound.
func Find(rows []Application, cvID int64) (Application, error) {
	for _, a := range rows {
		if a.UserCVID == cvID {
			return a, nil
		}
	}
	return Application{}, ErrNotFound
}
