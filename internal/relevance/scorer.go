package relevance

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywords []byte

// Category is a weighted keyword group.
type Category struct {
	Name      string   `yaml:"name"`
	Weight    int      `yaml:"weight"`
	TitleOnly bool     `yaml:"title_only"`
	Keywords  []string `yaml:"keywords"`
}

type keywordFile struct {
	Categories []Category `yaml:"categories"`
}

// Scorer ranks articles by keyword presence.
type Scorer struct {
	categories []Category
}

// NewScorer builds a scorer from the embedded keyword tables.
func NewScorer() (*Scorer, error) {
	return Parse(defaultKeywords)
}

// MustNewScorer is NewScorer for package-level initialisation.
func MustNewScorer() *Scorer {
	s, err := NewScorer()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse builds a scorer from a YAML keyword document.
func Parse(data []byte) (*Scorer, error) {
	var file keywordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing keyword tables: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("parsing keyword tables: no categories")
	}

	categories := make([]Category, 0, len(file.Categories))
	for _, c := range file.Categories {
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		c.Keywords = keywords
		categories = append(categories, c)
	}
	return &Scorer{categories: categories}, nil
}

// Categories returns the loaded keyword groups.
func (s *Scorer) Categories() []Category {
	return s.categories
}

// Score returns the relevance of an article. Title-only categories look at
// the title alone; every other category looks at title and description.
func (s *Scorer) Score(title, description string) int {
	lowerTitle := strings.ToLower(title)
	text := lowerTitle + " " + strings.ToLower(description)

	score := 0
	for _, c := range s.categories {
		haystack := text
		if c.TitleOnly {
			haystack = lowerTitle
		}
		if containsAny(haystack, c.Keywords) {
			score += c.Weight
		}
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
