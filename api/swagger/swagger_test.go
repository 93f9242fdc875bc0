package swagger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocPathsAreRelativeToAPIPrefix(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api", doc.BasePath)
	for path := range doc.Paths {
		assert.False(t, strings.HasPrefix(path, "/api/"), path)
	}
	for _, path := range []string{"/departments", "/student", "/students", "/enrollments", "/setup", "/stats", "/export/{resource}"} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.NotContains(t, doc.Paths, "/health")
}
