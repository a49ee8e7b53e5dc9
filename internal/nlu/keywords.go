package nlu

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Part-of-speech tags worth keeping for prompt enrichment: nouns for
// the food itself, adjectives and verbs for preparation and style.
var keywordTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
	"JJ": true, "JJR": true, "JJS": true,
	"VB": true, "VBD": true, "VBG": true, "VBN": true, "VBP": true, "VBZ": true,
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "be": true,
	"for": true, "in": true, "is": true, "it": true, "of": true,
	"on": true, "or": true, "our": true, "served": true, "the": true,
	"with": true,
}

// ExtractKeywords tags the text and returns the lemmatized content
// words in first-seen order. Order matters: the prompt built from
// these keywords must be identical for identical input.
func ExtractKeywords(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	var keywords []string
	seen := map[string]bool{}

	for _, tok := range doc.Tokens() {
		if !keywordTags[tok.Tag] {
			continue
		}

		word := lemma(strings.ToLower(tok.Text), tok.Tag)
		if len(word) < 2 || stopwords[word] || !isAlphabetic(word) {
			continue
		}

		if !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}

	return keywords, nil
}

// lemma is a shallow normalizer: plural nouns are singularized so
// "tacos" and "taco" collapse to one keyword. The tagger provides no
// full lemmatizer, and this is as far as the prompts need.
func lemma(word, tag string) string {
	if tag != "NNS" && tag != "NNPS" {
		return word
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "es") && len(word) > 4:
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && len(word) > 3:
		return strings.TrimSuffix(word, "s")
	}
	return word
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}
