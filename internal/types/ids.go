package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.

// JobID identifies a job whose candidates are arranged on a board
type JobID int

// CandidateID identifies a candidate within a job
type CandidateID int

// ToInt converts type alias back to int for compatibility with SQL and JSON layers
func (id JobID) ToInt() int {
	return int(id)
}

func (id CandidateID) ToInt() int {
	return int(id)
}

// Valid reports whether the ID could refer to a stored row
func (id JobID) Valid() bool {
	return id > 0
}

func (id CandidateID) Valid() bool {
	return id > 0
}
