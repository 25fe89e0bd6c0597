package engine

import "time"

// Result is the record emitted once when a session ends
type Result struct {
	FinalScore       int       `json:"finalScore"`
	CollectedCorrect []int     `json:"collectedCorrectIds"`
	CollectedWrong   []int     `json:"collectedWrongIds"`
	EndReason        EndReason `json:"endReason"`
	TotalCorrect     int       `json:"totalCorrect"`

	Email      string    `json:"email,omitempty"`
	Region     string    `json:"region,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}
