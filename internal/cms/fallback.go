package cms

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallback holds the documents served when the CMS is not configured or a
// request fails.
type Fallback struct {
	Project      any   `yaml:"project"`
	Design       any   `yaml:"design"`
	Content      []any `yaml:"content"`
	Testimonials []any `yaml:"testimonials"`
	Team         []any `yaml:"team"`
}

func defaultFallback() Fallback {
	return Fallback{
		Project: map[string]any{
			"name":             "My Website",
			"slug":             "my-website",
			"primary_category": "Professional Services",
		},
	}
}

// LoadFallback reads fallback documents from a YAML file. Sections missing
// from the file keep the built-in defaults.
func LoadFallback(path string) (Fallback, error) {
	fb := defaultFallback()
	path = strings.TrimSpace(path)
	if path == "" {
		return fb, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fb, fmt.Errorf("cms: read fallback %s: %w", path, err)
	}
	var file Fallback
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fb, fmt.Errorf("cms: parse fallback %s: %w", path, err)
	}
	if file.Project != nil {
		fb.Project = file.Project
	}
	fb.Design = file.Design
	fb.Content = file.Content
	fb.Testimonials = file.Testimonials
	fb.Team = file.Team
	return fb, nil
}

// content filters the fallback items the same way the remote endpoint does
// for type and slug.
func (f Fallback) content(filters Filters) []any {
	out := make([]any, 0, len(f.Content))
	for _, item := range f.Content {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if filters.Type != "" && m["type"] != filters.Type {
			continue
		}
		if filters.Slug != "" && m["slug"] != filters.Slug {
			continue
		}
		out = append(out, cloneDoc(m))
	}
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out
}
