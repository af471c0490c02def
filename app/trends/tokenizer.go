package trends

import (
	"regexp"
	"strings"
)

// nonLetter strips everything except ASCII letters and whitespace before
// tokenization, mirroring how keyword statistics have always been computed.
var nonLetter = regexp.MustCompile(`[^a-zA-Z\s]`)

// Tokenize lower-cases the text, removes non-letter characters and splits
// on whitespace, keeping tokens longer than two characters that are not
// stopwords.
func Tokenize(text string) []string {
	cleaned := strings.ToLower(nonLetter.ReplaceAllString(text, ""))

	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}
