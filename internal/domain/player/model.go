package player

import (
	"fmt"
	"strings"
)

// Shirt numbers follow the usual matchday range.
const (
	NumberMin = 1
	NumberMax = 99
)

// Player is a registered squad member. Number is unique across the
// whole squad; uniqueness is enforced at registration time.
type Player struct {
	ID        int64
	Name      string
	Positions []string
	Number    int
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Positions) == 0 {
		return fmt.Errorf("positions are required")
	}
	if p.Number < NumberMin || p.Number > NumberMax {
		return fmt.Errorf("number must be between %d and %d", NumberMin, NumberMax)
	}

	return nil
}
