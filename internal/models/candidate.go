package models

// Candidate represents a single applicant arranged on a job's board
// Status selects the column, Position orders the candidate within it
type Candidate struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Status   Status `json:"status"`
	Position int    `json:"position"`
}

// GetID returns the candidate ID (used by the CLI quiet output mode)
func (c Candidate) GetID() int {
	return c.ID
}

// CandidateUpdate is the body of a candidate PATCH request
type CandidateUpdate struct {
	Candidate Candidate `json:"candidate"`
}
