package serviceimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffAuditValues(t *testing.T) {
	old := map[string]any{"name": "Alpha", "description": "old", "status": "active"}
	updated := map[string]any{"name": "Alpha", "description": "new", "status": "inactive"}

	oldChanged, newChanged := diffAuditValues(old, updated)

	assert.Equal(t, map[string]any{"description": "old", "status": "active"}, oldChanged)
	assert.Equal(t, map[string]any{"description": "new", "status": "inactive"}, newChanged)
}

func TestDiffAuditValuesNoChanges(t *testing.T) {
	values := map[string]any{"name": "Alpha", "status": "active"}

	oldChanged, newChanged := diffAuditValues(values, map[string]any{"name": "Alpha", "status": "active"})

	assert.Empty(t, oldChanged)
	assert.Empty(t, newChanged)
}
