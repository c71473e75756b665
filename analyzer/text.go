package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// minSentenceRunes is the exclusive lower bound on terminated sentences
	minSentenceRunes = 10

	minClauseWords = 15
	maxClauses     = 8
	minLegalHits   = 2

	// key points must have more than 8 and fewer than 50 words
	minKeyPointWords = 8
	maxKeyPointWords = 50
	maxKeyPoints     = 6

	shortHeadingWords = 8
)

// Tokenize splits text into sentences terminated by '.', '!', '?' or ';'.
// Terminated candidates of ten runes or fewer are dropped. A trailing
// unterminated fragment is kept whatever its length.
func Tokenize(text string) []string {
	var (
		sentences []string
		buf       strings.Builder
	)
	for _, r := range text {
		buf.WriteRune(r)
		switch r {
		case '.', '!', '?', ';':
			s := strings.TrimSpace(buf.String())
			if utf8.RuneCountInString(s) > minSentenceRunes {
				sentences = append(sentences, s)
			}
			buf.Reset()
		}
	}
	if s := strings.TrimSpace(buf.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// KeywordHits counts taxonomy keywords contained in text. Each
// (category, keyword) pair counts once; containment is by substring.
func KeywordHits(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, c := range Taxonomy {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
	}
	return hits
}

// IsLegal reports whether text carries at least two taxonomy keyword hits
func IsLegal(text string) bool {
	return KeywordHits(text) >= minLegalHits
}

// IsClauseStart reports whether a sentence opens a new clause
func IsClauseStart(sentence string) bool {
	s := strings.TrimSpace(sentence)
	for _, p := range clauseStartPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return len(strings.Fields(s)) < shortHeadingWords && isUpper(s)
}

// isUpper reports whether s has at least one cased letter and no lower-case ones
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// Segment groups sentences into clauses and keeps at most eight that are
// long enough and carry legal content.
func Segment(sentences []string) []string {
	var (
		candidates []string
		current    []string
	)
	flush := func() {
		text := strings.Join(current, " ")
		if len(strings.Fields(text)) > minClauseWords {
			candidates = append(candidates, text)
		}
	}

	for _, s := range sentences {
		if IsClauseStart(s) && len(current) > 0 {
			flush()
			current = []string{s}
			continue
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		flush()
	}

	clauses := make([]string, 0, maxClauses)
	for _, c := range candidates {
		if !IsLegal(c) {
			continue
		}
		clauses = append(clauses, strings.TrimSpace(c))
		if len(clauses) == maxClauses {
			break
		}
	}
	return clauses
}

// Simplify replaces legal jargon with plain words and normalizes whitespace
func Simplify(clause string) string {
	out := clause
	for _, r := range compiledSimplifications {
		out = r.replaceWholeWords(out)
	}
	return strings.Join(strings.Fields(out), " ")
}

// KeyPoints returns up to six legal sentences of 9 to 49 words
func KeyPoints(text string) []string {
	points := make([]string, 0, maxKeyPoints)
	for _, s := range Tokenize(text) {
		n := len(strings.Fields(s))
		if n <= minKeyPointWords || n >= maxKeyPointWords || !IsLegal(s) {
			continue
		}
		points = append(points, strings.TrimSpace(s))
		if len(points) == maxKeyPoints {
			break
		}
	}
	return points
}

// truncateRunes returns at most n runes of s
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
