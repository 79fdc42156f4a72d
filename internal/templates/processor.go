package templates

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/logger"
)

// Context holds the variables substituted into a template.
type Context map[string]interface{}

// defaultContext supplies fallback values for placeholders the caller leaves
// unset, so a partial trip context never blocks rendering.
var defaultContext = map[string]string{
	"destination":          "undetermined",
	"start_date":           "undetermined",
	"end_date":             "undetermined",
	"duration":             "0",
	"purpose":              "undetermined",
	"transport_method":     "Undecided",
	"hotel_name":           "undetermined",
	"hotel_phone":          "undetermined",
	"client_name":          "",
	"client_phone":         "",
	"emergency_contact":    "",
	"meeting_location":     "",
	"business_cards_count": "50-100",
	"recommended_cash":     "20,000",
	"souvenir_notes":       "",
}

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)
	// Headings may carry a decorative leading glyph; the category name starts
	// at the first letter or digit.
	headingRe   = regexp.MustCompile(`^#{2,3}\s*(?:[^\p{L}\p{N}\s]\s*)*([\p{L}\p{N}].*)$`)
	checklistRe = regexp.MustCompile(`^- \[([x ])\]\s*(.+)$`)
)

// ExtractedItem is one checklist line found in rendered markdown.
type ExtractedItem struct {
	Category string
	Name     string
	Checked  bool
}

// Processor loads, renders and combines markdown templates from a directory.
type Processor struct {
	dir string
}

// NewProcessor creates a Processor reading templates from dir.
func NewProcessor(dir string) *Processor {
	return &Processor{dir: dir}
}

// LoadTemplate reads a template file (metadata plus body) by name.
func (p *Processor) LoadTemplate(name string) (TemplateData, error) {
	return loadTemplateFile(filepath.Join(p.dir, name), name)
}

// RenderTemplate loads a template and substitutes its placeholders from the
// context, falling back to the default table for anything unset.
func (p *Processor) RenderTemplate(name string, ctx Context) (string, error) {
	data, err := p.LoadTemplate(name)
	if err != nil {
		return "", err
	}

	rendered := placeholderRe.ReplaceAllStringFunc(data.Content, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		if v, ok := ctx[key]; ok {
			return fmt.Sprint(v)
		}
		if v, ok := defaultContext[key]; ok {
			return v
		}
		return ""
	})

	return rendered, nil
}

// CombineTemplates renders a base template and zero or more module templates
// (from the modules/ subdirectory) with the same context, joined by a
// horizontal rule. A missing module is logged and skipped; a missing base is
// fatal.
func (p *Processor) CombineTemplates(base string, modules []string, ctx Context) (string, error) {
	log := logger.GetLogger()

	combined, err := p.RenderTemplate(base, ctx)
	if err != nil {
		return "", err
	}

	parts := []string{}
	for _, module := range modules {
		content, err := p.RenderTemplate(filepath.Join("modules", module), ctx)
		if err != nil {
			log.Warnw("Module template not found, skipping", "module", module, "error", err)
			continue
		}
		parts = append(parts, content)
	}

	if len(parts) > 0 {
		combined += "\n\n---\n\n" + strings.Join(parts, "\n\n")
	}
	return combined, nil
}

// ExtractChecklistItems pulls (category, name, checked) tuples out of
// markdown. Level 2 and 3 headings open a category that persists until the
// next heading; `- [ ]` / `- [x]` lines are items; everything else is prose
// and ignored.
func ExtractChecklistItems(markdown string) []ExtractedItem {
	items := []ExtractedItem{}
	category := "Other"

	for _, line := range strings.Split(markdown, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			category = strings.TrimSpace(m[1])
			continue
		}
		if m := checklistRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			items = append(items, ExtractedItem{
				Category: category,
				Name:     strings.TrimSpace(m[2]),
				Checked:  m[1] == "x",
			})
		}
	}
	return items
}

// UpdateChecklistStatus rewrites checkbox lines whose item name appears in
// updates, preserving indentation. Items not named are untouched; names with
// no matching line are ignored.
func UpdateChecklistStatus(markdown string, updates map[string]bool) string {
	lines := strings.Split(markdown, "\n")

	for i, line := range lines {
		m := checklistRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[2])
		checked, ok := updates[name]
		if !ok {
			continue
		}
		mark := " "
		if checked {
			mark = "x"
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		lines[i] = fmt.Sprintf("%s- [%s] %s", indent, mark, name)
	}

	return strings.Join(lines, "\n")
}

// IsTemplateNotFound reports whether the error is a template lookup failure.
func IsTemplateNotFound(err error) bool {
	appErr, ok := err.(*errors.AppError)
	return ok && appErr.Type == errors.TemplateNotFoundError
}
