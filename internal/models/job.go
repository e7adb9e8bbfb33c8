package models

// Job represents an opening that candidates are arranged under
type Job struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID returns the job ID
func (j Job) GetID() int {
	return j.ID
}
