package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"legalzen-backend/models"
)

// Matcher reports whether lower-cased text belongs to a keyword group
type Matcher interface {
	Match(lower string) bool
}

// AnyOf matches when any of its keywords occurs as a substring
type AnyOf []string

// Match implements Matcher
func (a AnyOf) Match(lower string) bool {
	for _, kw := range a {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Rule pairs a keyword group with a fixed result. Rules are evaluated in
// order and the first match wins.
type Rule struct {
	When   Matcher
	Result string
}

// firstMatch returns the result of the first matching rule, or def
func firstMatch(rules []Rule, lower, def string) string {
	for _, r := range rules {
		if r.When.Match(lower) {
			return r.Result
		}
	}
	return def
}

// Category is one entry of the legal keyword taxonomy
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is the fixed keyword table used for legal-content scoring
var Taxonomy = []Category{
	{Name: "contract_terms", Keywords: []string{"agreement", "contract", "terms", "conditions", "party", "parties"}},
	{Name: "compensation", Keywords: []string{"salary", "wage", "compensation", "payment", "remuneration", "benefits"}},
	{Name: "termination", Keywords: []string{"termination", "terminate", "end", "conclusion", "expiry", "notice"}},
	{Name: "confidentiality", Keywords: []string{"confidential", "non-disclosure", "nda", "proprietary", "trade secret"}},
	{Name: "liability", Keywords: []string{"liability", "responsible", "damages", "indemnify", "negligence"}},
	{Name: "intellectual_property", Keywords: []string{"copyright", "trademark", "patent", "intellectual property", "ip"}},
	{Name: "non_compete", Keywords: []string{"non-compete", "competition", "competitor", "restraint of trade"}},
}

// Replacement maps a legal term to its plain-language equivalent
type Replacement struct {
	Term  string
	Plain string
}

// Simplifications is applied in order. Multi-word phrases precede the
// shorter terms they start with.
var Simplifications = []Replacement{
	{Term: "whereas", Plain: "since"},
	{Term: "heretofore", Plain: "before now"},
	{Term: "hereinafter", Plain: "from now on"},
	{Term: "pursuant to", Plain: "according to"},
	{Term: "notwithstanding", Plain: "despite"},
	{Term: "in consideration of", Plain: "in exchange for"},
	{Term: "shall not", Plain: "must not"},
	{Term: "shall", Plain: "must"},
	{Term: "may not", Plain: "cannot"},
	{Term: "such", Plain: "this"},
	{Term: "said", Plain: "the mentioned"},
	{Term: "aforementioned", Plain: "mentioned above"},
	{Term: "hereunder", Plain: "under this agreement"},
	{Term: "thereof", Plain: "of this"},
	{Term: "whereby", Plain: "by which"},
	{Term: "herein", Plain: "in this document"},
}

// Fallback labels used when no rule matches
const (
	GeneralTermsTitle       = "📄 General Terms"
	GeneralTermsExplanation = "This is a standard legal provision that defines rights, obligations, or procedures for the parties involved."
)

// TitleRules must stay in category order with ExplanationRules
var TitleRules = []Rule{
	{When: AnyOf{"salary", "wage", "compensation", "payment", "remuneration"}, Result: "💰 Compensation & Payment"},
	{When: AnyOf{"termination", "terminate", "end", "notice"}, Result: "📋 Termination Conditions"},
	{When: AnyOf{"confidential", "non-disclosure", "proprietary", "secret"}, Result: "🔒 Confidentiality Agreement"},
	{When: AnyOf{"liability", "damages", "responsible", "indemnify"}, Result: "⚖️ Liability & Damages"},
	{When: AnyOf{"intellectual property", "copyright", "patent", "trademark"}, Result: "💡 Intellectual Property"},
	{When: AnyOf{"non-compete", "competition", "competitor"}, Result: "🚫 Non-Compete Clause"},
	{When: AnyOf{"duties", "responsibilities", "obligations", "perform"}, Result: "📝 Duties & Responsibilities"},
	{When: AnyOf{"benefits", "insurance", "vacation", "leave"}, Result: "🎯 Benefits & Perks"},
}

var ExplanationRules = []Rule{
	{When: AnyOf{"salary", "wage", "compensation"}, Result: "This clause defines how much you'll be paid, when you'll receive payments, and any deductions that may apply."},
	{When: AnyOf{"termination"}, Result: "This section explains the conditions under which employment can be ended, including notice requirements and procedures."},
	{When: AnyOf{"confidential", "non-disclosure"}, Result: "This requires you to keep company information private and not share sensitive data with unauthorized parties."},
	{When: AnyOf{"liability"}, Result: "This clause defines who is responsible for damages, losses, or legal issues that might arise."},
	{When: AnyOf{"intellectual property", "copyright"}, Result: "This covers ownership of ideas, inventions, or creative work produced during employment."},
	{When: AnyOf{"non-compete"}, Result: "This restricts your ability to work for competitors or start competing businesses for a specified period."},
	{When: AnyOf{"duties", "responsibilities"}, Result: "This outlines what tasks and responsibilities you're expected to fulfill in your role."},
	{When: AnyOf{"benefits"}, Result: "This describes additional compensation like health insurance, vacation time, or other employee perks."},
}

// DocumentTypeRule maps a phrase group to a document type
type DocumentTypeRule struct {
	When Matcher
	Type models.DocumentType
}

// DocumentTypeRules are checked in priority order
var DocumentTypeRules = []DocumentTypeRule{
	{When: AnyOf{"employment agreement", "employment contract", "job offer"}, Type: models.DocumentTypeEmployment},
	{When: AnyOf{"lease agreement", "rental agreement", "tenancy"}, Type: models.DocumentTypeLease},
	{When: AnyOf{"purchase agreement", "sales contract", "buy"}, Type: models.DocumentTypePurchase},
	{When: AnyOf{"non-disclosure", "nda", "confidentiality agreement"}, Type: models.DocumentTypeNDA},
	{When: AnyOf{"service agreement", "consulting agreement"}, Type: models.DocumentTypeService},
	{When: AnyOf{"partnership agreement", "joint venture"}, Type: models.DocumentTypePartnership},
}

// Themes lists summary themes in the order they are reported
var Themes = []Rule{
	{When: AnyOf{"employment", "employee", "employer"}, Result: "employment terms"},
	{When: AnyOf{"salary", "compensation", "payment"}, Result: "compensation details"},
	{When: AnyOf{"termination", "notice"}, Result: "termination procedures"},
	{When: AnyOf{"confidential", "non-disclosure"}, Result: "confidentiality requirements"},
	{When: AnyOf{"benefits", "insurance"}, Result: "benefits and perks"},
}

// Topic is a question category with its answer templates
type Topic struct {
	Name string
	// Question triggers the topic when it matches the lower-cased question.
	Question AnyOf
	// Sentence selects supporting sentences from the document.
	Sentence AnyOf
	// Found is a format string taking the supporting sentence.
	Found    string
	NotFound string
}

// Topics are checked in priority order
var Topics = []Topic{
	{
		Name:     "compensation",
		Question: AnyOf{"salary", "pay", "money", "compensation"},
		Sentence: AnyOf{"salary", "wage", "compensation", "payment"},
		Found:    "Regarding compensation: %s... Please review the compensation section for complete details.",
		NotFound: "I don't see specific salary information in this document. You may need to look for a separate compensation agreement.",
	},
	{
		Name:     "termination",
		Question: AnyOf{"termination", "quit", "leave", "fire"},
		Sentence: AnyOf{"termination", "terminate", "notice", "end"},
		Found:    "About termination: %s... Check the termination clause for complete procedures.",
		NotFound: "I don't see specific termination procedures in this document.",
	},
	{
		Name:     "benefits",
		Question: AnyOf{"benefit", "insurance", "vacation", "leave"},
		Sentence: AnyOf{"benefit", "insurance", "vacation", "leave", "health"},
		Found:    "Regarding benefits: %s... See the benefits section for full details.",
		NotFound: "I don't see specific benefit information in this document.",
	},
	{
		Name:     "confidentiality",
		Question: AnyOf{"confidential", "secret", "disclosure"},
		Sentence: AnyOf{"confidential", "disclosure", "proprietary", "secret"},
		Found:    "About confidentiality: %s... Review confidentiality clauses for complete terms.",
		NotFound: "I don't see specific confidentiality requirements in this document.",
	},
	{
		Name:     "non_compete",
		Question: AnyOf{"compete", "competition", "competitor"},
		Sentence: AnyOf{"compete", "competition", "competitor", "restraint"},
		Found:    "About competition restrictions: %s... Check non-compete clauses for details.",
		NotFound: "I don't see specific non-compete restrictions in this document.",
	},
}

// clauseStartPatterns are anchored at the start of a trimmed sentence
var clauseStartPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\p{Nd}+\.`),
	regexp.MustCompile(`^\([a-z]\)`),
	regexp.MustCompile(`^[A-Z][A-Z\s\v\p{Z}]+:`),
	regexp.MustCompile(`^WHEREAS`),
	regexp.MustCompile(`^NOW THEREFORE`),
	regexp.MustCompile(`^Section \p{Nd}+`),
	regexp.MustCompile(`^Article \p{Nd}+`),
	regexp.MustCompile(`^Clause \p{Nd}+`),
	regexp.MustCompile(`^\p{Nd}+\.\p{Nd}+`),
	regexp.MustCompile(`^THE PARTIES AGREE`),
	regexp.MustCompile(`^IT IS AGREED`),
	regexp.MustCompile(`^IN WITNESS WHEREOF`),
}

type compiledReplacement struct {
	pattern *regexp.Regexp
	plain   string
}

var compiledSimplifications = compileReplacements(Simplifications)

func compileReplacements(rs []Replacement) []compiledReplacement {
	out := make([]compiledReplacement, 0, len(rs))
	for _, r := range rs {
		out = append(out, compiledReplacement{
			pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.Term)),
			plain:   r.Plain,
		})
	}
	return out
}

// replaceWholeWords substitutes matches that are not glued to a letter, digit
// or mark on either side. RE2's \b only knows ASCII word characters.
func (r compiledReplacement) replaceWholeWords(s string) string {
	matches := r.pattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		before, _ := utf8.DecodeLastRuneInString(s[:m[0]])
		after, _ := utf8.DecodeRuneInString(s[m[1]:])
		if isWordRune(before) || isWordRune(after) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(r.plain)
		last = m[1]
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
