// Package templates renders markdown checklist templates and extracts
// categorized, checkable items from the rendered output.
package templates

import (
	"os"
	"strings"

	"github.com/PackPilot/packpilot-backend/errors"
	"gopkg.in/yaml.v3"
)

// TemplateMetadata is the header block at the top of every template file.
type TemplateMetadata struct {
	TemplateType       string   `yaml:"template_type"`
	TemplateVersion    string   `yaml:"template_version"`
	LastUpdated        string   `yaml:"last_updated"`
	CustomizableFields []string `yaml:"customizable_fields"`
}

// TemplateData is a parsed template file: its metadata and markdown body.
type TemplateData struct {
	Metadata TemplateMetadata
	Content  string
}

const metadataDelimiter = "---"

// parseTemplate splits a template file into its metadata header and body.
// A file without a header is all body.
func parseTemplate(raw string) (TemplateData, error) {
	content := strings.ReplaceAll(raw, "\r\n", "\n")

	if !strings.HasPrefix(content, metadataDelimiter+"\n") {
		return TemplateData{Content: content}, nil
	}

	rest := content[len(metadataDelimiter)+1:]
	end := strings.Index(rest, "\n"+metadataDelimiter)
	if end < 0 {
		// Unterminated header: treat the whole file as body.
		return TemplateData{Content: content}, nil
	}

	var meta TemplateMetadata
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return TemplateData{}, err
	}

	body := rest[end+len(metadataDelimiter)+1:]
	body = strings.TrimPrefix(body, "\n")
	return TemplateData{Metadata: meta, Content: body}, nil
}

// loadTemplateFile reads and parses a template from disk. A missing or
// unparsable file is a template-not-found error, which is fatal to the
// generation call that needed it.
func loadTemplateFile(path, name string) (TemplateData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TemplateData{}, errors.TemplateNotFound(name, err)
	}
	data, err := parseTemplate(string(raw))
	if err != nil {
		return TemplateData{}, errors.TemplateNotFound(name, err)
	}
	return data, nil
}
