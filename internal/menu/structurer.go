package menu

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// Structurer turns raw OCR text into dish records.
// Two implementations exist: the rule-based splitter below and the
// LLM-backed one in internal/llm. Which one serves a request is
// decided by configuration, not by duplicated endpoint code.
type Structurer interface {
	Structure(ctx context.Context, rawText string) ([]DishRecord, error)
}

const maxNameLength = 60

var (
	// Optional currency symbol, digits, optional two-decimal fraction.
	pricePattern = regexp.MustCompile(`^[$€£₹]?\s*\d+([.,]\d{2})?\s*$`)

	// Short tokens that are only digits/punctuation (page numbers, separators).
	junkPattern = regexp.MustCompile(`^[\d\W]+$`)
)

// RuleBasedStructurer is a greedy single-pass line classifier.
// A short line starting with an uppercase letter or digit opens a new
// dish; following lines accumulate as its description. There is no
// backtracking, so a long descriptive line that happens to start with
// a capital letter will be misclassified and stay that way.
type RuleBasedStructurer struct{}

func NewRuleBasedStructurer() *RuleBasedStructurer {
	return &RuleBasedStructurer{}
}

func (s *RuleBasedStructurer) Structure(_ context.Context, rawText string) ([]DishRecord, error) {
	var (
		records  []DishRecord
		name     string
		descBuf  []string
		havePend bool
	)

	flush := func() {
		if !havePend {
			return
		}
		rec := DishRecord{
			Name:        name,
			Description: strings.Join(descBuf, " "),
		}
		if keepRecord(rec) {
			records = append(records, rec)
		}
		name = ""
		descBuf = nil
		havePend = false
	}

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isLikelyDishName(line) {
			flush()
			name = line
			havePend = true
			continue
		}

		// Description lines before the first name have nothing to
		// attach to and are dropped, as are prices and junk tokens.
		if havePend && !pricePattern.MatchString(line) && !isJunkToken(line) {
			descBuf = append(descBuf, line)
		}
	}
	flush()

	return records, nil
}

// isLikelyDishName requires a short title-cased line: every word must
// open with an uppercase letter or digit. "Spicy Tacos" qualifies,
// "Grilled chicken, salsa" reads as a description.
func isLikelyDishName(line string) bool {
	if len(line) >= maxNameLength {
		return false
	}

	for _, word := range strings.Fields(line) {
		first := []rune(word)[0]
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			return false
		}
	}

	if pricePattern.MatchString(line) {
		return false
	}

	return !isJunkToken(line)
}

// isJunkToken reports whether a short line is composed entirely of
// digits and punctuation, e.g. "----" or "12.".
func isJunkToken(line string) bool {
	return len(line) <= 10 && junkPattern.MatchString(line)
}

// keepRecord is the post-filter: very short names, menu headers and
// purely numeric artifacts are discarded after structuring.
func keepRecord(rec DishRecord) bool {
	if len(rec.Name) <= 3 {
		return false
	}

	lower := strings.ToLower(rec.Name)
	if strings.Contains(lower, "ingredien") || strings.Contains(lower, "menu") {
		return false
	}

	return !isNumericName(rec.Name)
}

func isNumericName(name string) bool {
	for _, r := range name {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
