package models

// Participant represents a team member registered for one or more programs
type Participant struct {
	// ID is the unique identifier for the participant
	ID int `json:"id"`

	// Team is the name of the team the participant belongs to
	Team string `json:"team"`

	// ChessNumber is the participant's bib number, unique within a team
	ChessNumber string `json:"chessNumber"`

	// Name is the display name of the participant
	Name string `json:"name"`

	// Programs contains the event names the participant is registered for
	Programs []string `json:"programs"`

	// Scores maps a program name to the score awarded for it
	Scores map[string]float64 `json:"scores,omitempty"`
}

// TotalScore returns the sum of all awarded scores
func (p *Participant) TotalScore() float64 {
	var total float64
	for _, score := range p.Scores {
		total += score
	}
	return total
}

// HasProgram reports whether the participant is registered for program
func (p *Participant) HasProgram(program string) bool {
	for _, registered := range p.Programs {
		if registered == program {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the participant
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Programs != nil {
		clone.Programs = append([]string(nil), p.Programs...)
	}
	if p.Scores != nil {
		clone.Scores = make(map[string]float64, len(p.Scores))
		for program, score := range p.Scores {
			clone.Scores[program] = score
		}
	}
	return &clone
}
