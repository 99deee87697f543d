package match

import (
	"fmt"
	"strings"
	"time"
)

// Match is one fixture on the calendar. GoalsFor/GoalsAgainst stay nil
// until a result is recorded.
type Match struct {
	ID           int64
	Date         time.Time
	Opponent     string
	Home         bool
	GoalsFor     *int
	GoalsAgainst *int
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("opponent is required")
	}
	if m.GoalsFor != nil && *m.GoalsFor < 0 {
		return fmt.Errorf("goals for must be 0 or more")
	}
	if m.GoalsAgainst != nil && *m.GoalsAgainst < 0 {
		return fmt.Errorf("goals against must be 0 or more")
	}

	return nil
}
