package formation

import (
	"fmt"
	"strings"
)

// Slot is one tactical position a formation offers. SlotID is the
// stable key lineup slots refer to (e.g. "DEF-1"); Position is the
// label shown for it (e.g. "LB").
type Slot struct {
	SlotID   string
	Position string
	PlayerID *int64
}

// Formation is a reusable tactical template, e.g. "4-4-2".
type Formation struct {
	ID    int64
	Name  string
	Shape string
	Slots []Slot
}

// Validate checks the template as a whole and returns the first
// violated rule. Callers must not persist a formation that fails here.
func (f Formation) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("formation name is required")
	}
	if strings.TrimSpace(f.Shape) == "" {
		return fmt.Errorf("formation shape is required")
	}
	if len(f.Slots) == 0 {
		return fmt.Errorf("formation must include slots")
	}

	seen := make(map[string]struct{}, len(f.Slots))
	for _, s := range f.Slots {
		slotID := strings.TrimSpace(s.SlotID)
		if slotID == "" {
			return fmt.Errorf("each slot must include slotId")
		}
		if strings.TrimSpace(s.Position) == "" {
			return fmt.Errorf("each slot must include position")
		}
		if _, dup := seen[slotID]; dup {
			return fmt.Errorf("slotId must be unique within a formation")
		}
		seen[slotID] = struct{}{}
	}

	return nil
}
