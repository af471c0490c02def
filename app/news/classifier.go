package news

import (
	"strings"
)

// Classifier assigns categories and infers countries from record text
// using an injected, immutable rule set.
type Classifier struct {
	rules *Rules
}

func NewClassifier(rules *Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the first category (in declaration order, skipping the
// fallback) whose first keyword occurs as a substring of the lower-cased
// title+summary text. Matching is plain substring containment with no word
// boundaries: short keywords can fire inside longer words, which the live
// system accepts as the cost of simplicity.
func (c *Classifier) Classify(title, summary string) CategoryRule {
	combined := strings.ToLower(title + " " + summary)

	for _, cat := range c.rules.Categories {
		if cat.ID == OthersID {
			continue
		}
		for _, keyword := range cat.Keywords {
			if strings.Contains(combined, keyword) {
				return cat
			}
		}
	}

	return c.rules.Others()
}

// InferCountry returns the canonical display name of the first country rule
// with a word-boundary match in the lower-cased title+summary text, or ""
// when no rule matches.
func (c *Classifier) InferCountry(title, summary string) string {
	combined := strings.ToLower(title + " " + summary)

	for _, matcher := range c.rules.matchers {
		for _, pattern := range matcher.patterns {
			if pattern.MatchString(combined) {
				return matcher.name
			}
		}
	}

	return ""
}
