package news

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Categories map[string]categoryOverride `yaml:"categories"`
	Countries  []countryOverride           `yaml:"countries"`
}

type categoryOverride struct {
	Keywords []string `yaml:"keywords"`
}

type countryOverride struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// LoadRules builds a rule set from the defaults plus a YAML override file.
// The category id set is closed: overrides may replace keyword lists for
// declared ids but cannot add or remove categories. A countries section,
// when present, replaces the country table wholesale.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	categories := defaultCategories()
	for id, override := range file.Categories {
		idx := -1
		for i, cat := range categories {
			if cat.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("unknown category id in rules file: %s", id)
		}
		if id == OthersID && len(override.Keywords) > 0 {
			return nil, fmt.Errorf("category %q is the fallback and cannot have keywords", OthersID)
		}

		keywords := make([]string, 0, len(override.Keywords))
		for _, keyword := range override.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				return nil, fmt.Errorf("empty keyword for category %s", id)
			}
			keywords = append(keywords, keyword)
		}
		categories[idx].Keywords = keywords
	}

	countries := defaultCountries()
	if len(file.Countries) > 0 {
		countries = make([]CountryRule, 0, len(file.Countries))
		for i, override := range file.Countries {
			if override.Name == "" {
				return nil, fmt.Errorf("country at index %d must have a name", i)
			}
			if len(override.Patterns) == 0 {
				return nil, fmt.Errorf("country %q must have at least one pattern", override.Name)
			}
			patterns := make([]string, 0, len(override.Patterns))
			for _, pattern := range override.Patterns {
				pattern = strings.ToLower(strings.TrimSpace(pattern))
				if pattern == "" {
					return nil, fmt.Errorf("empty pattern for country %q", override.Name)
				}
				patterns = append(patterns, pattern)
			}
			countries = append(countries, CountryRule{Name: override.Name, Patterns: patterns})
		}
	}

	return newRules(categories, countries), nil
}
