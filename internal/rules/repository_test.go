package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transport_rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRepositoryLoad(t *testing.T) {
	t.Run("parses and caches", func(t *testing.T) {
		path := writeRules(t, `
transport_methods:
  bus:
    local_bus:
      items:
        - name: "Small change"
          category: money
general_recommendations:
  all_methods:
    - "Charge your phone"
`)
		repo := NewRepository(path)

		doc := repo.Load()
		require.Contains(t, doc.TransportMethods, "bus")
		assert.Equal(t, []string{"Charge your phone"}, doc.GeneralRecommendations.AllMethods)

		// Cached: deleting the file does not affect later loads.
		require.NoError(t, os.Remove(path))
		again := repo.Load()
		assert.Same(t, doc, again)
	})

	t.Run("missing file degrades to empty document", func(t *testing.T) {
		repo := NewRepository(filepath.Join(t.TempDir(), "nope.yaml"))
		doc := repo.Load()
		require.NotNil(t, doc)
		assert.Empty(t, doc.TransportMethods)
	})

	t.Run("malformed yaml degrades to empty document", func(t *testing.T) {
		path := writeRules(t, "transport_methods: [broken")
		repo := NewRepository(path)
		doc := repo.Load()
		require.NotNil(t, doc)
		assert.Empty(t, doc.TransportMethods)
	})
}

func TestRepositoryLoadShippedRules(t *testing.T) {
	repo := NewRepository(filepath.Join("..", "..", "data", "transport_rules.yaml"))
	doc := repo.Load()

	for _, method := range []string{"airplane", "train", "car", "bus", "other"} {
		assert.Contains(t, doc.TransportMethods, method)
	}
	assert.NotEmpty(t, doc.GeneralRecommendations.AllMethods)

	// The "other" method's sub-contexts land in the inline map.
	other := doc.TransportMethods["other"]
	assert.Contains(t, other.SubMethods, "bicycle")
	assert.Contains(t, other.SubMethods, "motorbike")
}
