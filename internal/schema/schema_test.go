package schema

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referencesRE = regexp.MustCompile(`REFERENCES (\w+)\(`)
var createRE = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`)

func TestProvisionedOrder(t *testing.T) {
	names := make([]string, 0)
	for _, table := range Provisioned() {
		names = append(names, table.Name)
	}
	assert.Equal(t, []string{"Department", "Teacher", "Course", "Enrolled", "Payment", "Book", "Authors", "Emails", "Phones"}, names)
}

func TestProvisionedRespectsForeignKeys(t *testing.T) {
	// student pre-exists, so it counts as already created.
	created := map[string]bool{"student": true}
	for _, table := range Provisioned() {
		assert.True(t, strings.HasPrefix(table.DDL, "CREATE TABLE IF NOT EXISTS"), table.Name)
		for _, m := range referencesRE.FindAllStringSubmatch(table.DDL, -1) {
			assert.True(t, created[m[1]], "%s references %s before it exists", table.Name, m[1])
		}
		created[createRE.FindStringSubmatch(table.DDL)[1]] = true
	}
}

func TestCountedCoversStatsKeys(t *testing.T) {
	keys := make([]string, 0, len(Counted))
	for _, c := range Counted {
		keys = append(keys, c.Key)
	}
	assert.ElementsMatch(t, []string{"students", "teachers", "departments", "courses", "enrollments", "books"}, keys)
}
