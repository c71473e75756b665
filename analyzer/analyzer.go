// Package analyzer implements the rule-based legal text engine: sentence
// tokenization, clause segmentation, jargon simplification, clause
// annotation, document classification, summaries and keyword question
// answering. Every operation is a pure function of its input and the
// immutable rule tables, so an Analyzer is safe for concurrent use.
package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"legalzen-backend/logging"
	"legalzen-backend/models"
)

const (
	overviewRunes = 300

	fallbackTitle       = "📄 Document Overview"
	fallbackSimplified  = "This document contains legal terms and conditions that both parties must follow."
	fallbackExplanation = "Legal documents establish the rules and obligations that govern relationships between parties."
	fallbackSummary     = "This legal document contains %d words and covers standard legal terms and conditions. The document includes various clauses that define rights, obligations, and procedures for the parties involved."
)

var fallbackKeyPoints = []string{
	"Document establishes legal obligations",
	"Both parties have rights and responsibilities",
	"Terms are legally binding when signed",
	"Standard legal procedures apply",
}

// Analyzer runs the analysis pipeline over a fixed set of rule tables
type Analyzer struct {
	logger        logging.Logger
	titles        []Rule
	explanations  []Rule
	documentTypes []DocumentTypeRule
	themes        []Rule
	topics        []Topic
	onFallback    func(error)
}

// Option is a functional option for Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used to report recovered faults
func WithLogger(l logging.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithTitleRules replaces the clause title table
func WithTitleRules(rules []Rule) Option {
	return func(a *Analyzer) {
		a.titles = rules
	}
}

// WithExplanationRules replaces the clause explanation table
func WithExplanationRules(rules []Rule) Option {
	return func(a *Analyzer) {
		a.explanations = rules
	}
}

// WithDocumentTypeRules replaces the document classification table
func WithDocumentTypeRules(rules []DocumentTypeRule) Option {
	return func(a *Analyzer) {
		a.documentTypes = rules
	}
}

// WithFallbackHook registers a callback invoked whenever Analyze degrades
// to the fallback analysis.
func WithFallbackHook(fn func(cause error)) Option {
	return func(a *Analyzer) {
		a.onFallback = fn
	}
}

// New creates an Analyzer using the default rule tables
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:        logging.NewNopLogger(),
		titles:        TitleRules,
		explanations:  ExplanationRules,
		documentTypes: DocumentTypeRules,
		themes:        Themes,
		topics:        Topics,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces the full analysis of text. It never fails: any fault in
// the pipeline is recovered and replaced by the fallback analysis.
func (a *Analyzer) Analyze(text string) (analysis *models.DocumentAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			a.logger.Error("document analysis failed, using fallback",
				logging.Err(err),
				logging.Int("text_length", len(text)),
			)
			if a.onFallback != nil {
				a.onFallback(err)
			}
			analysis = Fallback(text)
		}
	}()

	clauses := Segment(Tokenize(text))
	summary := a.Summarize(text, clauses)

	analyzed := make([]models.AnalyzedClause, 0, len(clauses))
	for _, c := range clauses {
		analyzed = append(analyzed, models.AnalyzedClause{
			Title:       a.Title(c),
			Original:    c,
			Simplified:  Simplify(c),
			Explanation: a.Explanation(c),
		})
	}

	return &models.DocumentAnalysis{
		Summary:      summary,
		Clauses:      analyzed,
		DocumentType: a.Classify(text),
		KeyPoints:    KeyPoints(text),
	}
}

// Title returns the display title of a clause
func (a *Analyzer) Title(clause string) string {
	return firstMatch(a.titles, strings.ToLower(clause), GeneralTermsTitle)
}

// Explanation returns the plain-language explanation of a clause
func (a *Analyzer) Explanation(clause string) string {
	return firstMatch(a.explanations, strings.ToLower(clause), GeneralTermsExplanation)
}

// Classify identifies the document type from phrase groups
func (a *Analyzer) Classify(text string) models.DocumentType {
	lower := strings.ToLower(text)
	for _, r := range a.documentTypes {
		if r.When.Match(lower) {
			return r.Type
		}
	}
	return models.DocumentTypeGeneric
}

// Summarize composes a short summary from document statistics and themes
func (a *Analyzer) Summarize(text string, clauses []string) string {
	summary := fmt.Sprintf("This %s contains %d main sections with approximately %d words.",
		a.Classify(text), len(clauses), len(strings.Fields(text)))

	lower := strings.ToLower(text)
	var themes []string
	for _, t := range a.themes {
		if t.When.Match(lower) {
			themes = append(themes, t.Result)
		}
	}
	if len(themes) > 0 {
		summary += " Key areas covered include: " + strings.Join(themes, ", ") + "."
	}
	return summary
}

// Fallback returns the canned analysis used when the pipeline faults
func Fallback(text string) *models.DocumentAnalysis {
	original := text
	if utf8.RuneCountInString(text) > overviewRunes {
		original = truncateRunes(text, overviewRunes) + "..."
	}
	return &models.DocumentAnalysis{
		Summary: fmt.Sprintf(fallbackSummary, len(strings.Fields(text))),
		Clauses: []models.AnalyzedClause{{
			Title:       fallbackTitle,
			Original:    original,
			Simplified:  fallbackSimplified,
			Explanation: fallbackExplanation,
		}},
		DocumentType: models.DocumentTypeGeneric,
		KeyPoints:    append([]string(nil), fallbackKeyPoints...),
	}
}

var defaultAnalyzer = New()

// Title returns the clause title using the default tables
func Title(clause string) string { return defaultAnalyzer.Title(clause) }

// Explanation returns the clause explanation using the default tables
func Explanation(clause string) string { return defaultAnalyzer.Explanation(clause) }

// Classify identifies the document type using the default tables
func Classify(text string) models.DocumentType { return defaultAnalyzer.Classify(text) }

// Summarize composes a summary using the default tables
func Summarize(text string, clauses []string) string { return defaultAnalyzer.Summarize(text, clauses) }

// Answer answers a question using the default tables
func Answer(question, documentText string) string {
	return defaultAnalyzer.Answer(question, documentText)
}
