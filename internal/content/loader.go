// Package content loads the portfolio's section data and renders its Markdown.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

//go:embed default.yaml
var defaultSite []byte

// Load reads site content from path, or the embedded default when path is empty.
func Load(path string) (*domain.Site, error) {
	if path == "" {
		return Parse(defaultSite)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and checks YAML site content.
func Parse(data []byte) (*domain.Site, error) {
	var site domain.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := check(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

func check(site *domain.Site) error {
	if site.Profile.Name == "" {
		return fmt.Errorf("content: profile.name is required")
	}
	seen := make(map[string]struct{}, len(site.Projects))
	for i, p := range site.Projects {
		if p.ID == "" {
			return fmt.Errorf("content: projects[%d] has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("content: duplicate project id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for i, s := range site.Skills {
		if !s.Category.Valid() {
			return fmt.Errorf("content: skills[%d] %q has unknown category %q", i, s.Name, s.Category)
		}
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("content: skills[%d] %q level %d out of range", i, s.Name, s.Level)
		}
	}
	return nil
}
