package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The child-row queries sort on the serial id column, so the initial schema
// must declare one for every table they read.
func TestInitMigrationDeclaresSerialIDs(t *testing.T) {
	raw, err := os.ReadFile("../../../../db/migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	idColumn := regexp.MustCompile(`(?m)^\s*id\s+BIGSERIAL\s+PRIMARY KEY`)
	for _, table := range []string{"formation_slots", "lineup_slots", "lineup_player_stats"} {
		t.Run(table, func(t *testing.T) {
			block := tableDefinition(t, string(raw), table)
			if !idColumn.MatchString(block) {
				t.Fatalf("table %s does not declare a serial id column", table)
			}
		})
	}
}

func tableDefinition(t *testing.T, ddl, table string) string {
	t.Helper()
	marker := "CREATE TABLE " + table + " ("
	start := strings.Index(ddl, marker)
	if start < 0 {
		t.Fatalf("table %s not found in migration", table)
	}
	rest := ddl[start+len(marker):]
	end := strings.Index(rest, ");")
	if end < 0 {
		t.Fatalf("unterminated definition for table %s", table)
	}
	return rest[:end]
}
