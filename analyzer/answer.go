package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	topicExcerptRunes   = 200
	genericExcerptRunes = 250
	minQuestionWordLen  = 3

	genericFound    = "I found this relevant information: %s... You may want to review the complete section for more details."
	genericNotFound = "I couldn't find specific information about '%s' in the document. Try asking about compensation, termination, benefits, or other specific topics covered in the document."

	questionWordCutset = ".,!?;:\"()[]{}"
)

var questionStopWords = map[string]struct{}{
	"what":  {},
	"does":  {},
	"this":  {},
	"mean":  {},
	"about": {},
}

// Answer matches question against the topic table, falling back to a
// keyword search over the document's sentences. It always returns an answer.
func (a *Analyzer) Answer(question, documentText string) string {
	lower := strings.ToLower(question)
	sentences := Tokenize(documentText)

	for _, t := range a.topics {
		if !t.Question.Match(lower) {
			continue
		}
		for _, s := range sentences {
			if t.Sentence.Match(strings.ToLower(s)) {
				return fmt.Sprintf(t.Found, truncateRunes(s, topicExcerptRunes))
			}
		}
		return t.NotFound
	}

	words := questionWords(question)
	for _, s := range sentences {
		if AnyOf(words).Match(strings.ToLower(s)) {
			return fmt.Sprintf(genericFound, truncateRunes(s, genericExcerptRunes))
		}
	}
	return fmt.Sprintf(genericNotFound, question)
}

// questionWords extracts search words from a question. Length and stop-word
// filtering apply to the raw token before punctuation is stripped.
func questionWords(question string) []string {
	var words []string
	for _, tok := range strings.Fields(question) {
		if utf8.RuneCountInString(tok) <= minQuestionWordLen {
			continue
		}
		if _, stop := questionStopWords[strings.ToLower(tok)]; stop {
			continue
		}
		w := strings.ToLower(strings.Trim(tok, questionWordCutset))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
