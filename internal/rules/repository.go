package rules

import (
	"os"
	"sync"

	"github.com/PackPilot/packpilot-backend/logger"
	"gopkg.in/yaml.v3"
)

// Repository loads and caches the transport rule document. The document is
// parsed once and shared read-only for the process lifetime; a missing or
// malformed file degrades to an empty document instead of failing, so every
// transport adjustment silently resolves to zero items.
type Repository struct {
	file string

	mu    sync.Mutex
	cache *RuleDocument
}

// NewRepository creates a Repository reading from the given YAML file.
func NewRepository(file string) *Repository {
	return &Repository{file: file}
}

// Load returns the cached rule document, parsing the file on first call.
// Never returns nil: load failures yield an empty document. Failures are not
// cached, so a later call retries the file.
func (r *Repository) Load() *RuleDocument {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		return r.cache
	}

	log := logger.GetLogger()

	data, err := os.ReadFile(r.file)
	if err != nil {
		log.Errorw("Transport rules file not readable", "file", r.file, "error", err)
		return EmptyDocument()
	}

	var doc RuleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Errorw("Failed to parse transport rules", "file", r.file, "error", err)
		return EmptyDocument()
	}
	if doc.TransportMethods == nil {
		doc.TransportMethods = map[string]MethodRules{}
	}

	log.Infow("Transport rules loaded", "file", r.file, "methods", len(doc.TransportMethods))
	r.cache = &doc
	return r.cache
}
