package analyzer

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("drops short terminated candidates and keeps the tail", func(t *testing.T) {
		got := Tokenize("Hi. This is a long sentence! Ok? tail")
		assert.Equal(t, []string{"This is a long sentence!", "tail"}, got)
	})

	t.Run("semicolons terminate sentences", func(t *testing.T) {
		got := Tokenize("The first part is here; the second part is here.")
		assert.Equal(t, []string{"The first part is here;", "the second part is here."}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("   \n\t "))
	})

	t.Run("only the trailing fragment may be short", func(t *testing.T) {
		text := "A. B. Short one. Yet another long sentence here. C. end"
		got := Tokenize(text)
		require.NotEmpty(t, got)
		for _, s := range got[:len(got)-1] {
			assert.Greater(t, utf8.RuneCountInString(s), 10, s)
		}
		assert.Equal(t, "end", got[len(got)-1])
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		// nine runes but more than ten bytes
		got := Tokenize("élégance.")
		assert.Empty(t, got)
	})
}

func TestKeywordHits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no keywords", "The weather is nice today.", 0},
		{"same category counts twice", "Salary and wage.", 2},
		{"case insensitive", "CONFIDENTIAL", 1},
		{"substring inside a word", "The ship sailed.", 1},
		{"multi word keyword", "restraint of trade", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordHits(tt.text))
		})
	}
}

func TestIsLegal(t *testing.T) {
	assert.False(t, IsLegal("The weather is nice today."))
	assert.False(t, IsLegal("The salary is fine."))
	assert.True(t, IsLegal("The salary and wage are fine."))
	assert.True(t, IsLegal("The ship sailed to the party."))
}

func TestIsLegal_Monotonic(t *testing.T) {
	text := "The weather is nice today."
	prev := KeywordHits(text)
	for _, kw := range []string{"salary", "notice", "patent", "liability"} {
		text += " " + kw
		hits := KeywordHits(text)
		assert.GreaterOrEqual(t, hits, prev)
		prev = hits
	}
	assert.True(t, IsLegal(text))
}

func TestIsClauseStart(t *testing.T) {
	starts := []string{
		"1. The Employee",
		"(a) the Company",
		"DEFINITIONS: the following terms",
		"WHEREAS the parties",
		"NOW THEREFORE the parties",
		"Section 4 Payment",
		"Article 12 Governing law",
		"Clause 3 Notices",
		"1.2 Scope of work",
		"THE PARTIES AGREE as follows",
		"IT IS AGREED that",
		"IN WITNESS WHEREOF the parties",
		"CONFIDENTIALITY OBLIGATIONS",
		"  2. leading whitespace is trimmed",
		"١. The Employee shall work",
		"Section ٣ Payment",
		"٢.١ Scope of work",
		"GOVERNING\u00a0LAW: this agreement",
	}
	for _, s := range starts {
		assert.True(t, IsClauseStart(s), s)
	}

	notStarts := []string{
		"The Company shall pay the Employee.",
		"section 4 lower case",
		"(A) upper case letter",
		"THIS HEADING IS FAR TOO LONG TO BE A SHORT HEADING HERE",
		"12345",
	}
	for _, s := range notStarts {
		assert.False(t, IsClauseStart(s), s)
	}
}

func TestSegment(t *testing.T) {
	sentences := []string{
		"Section 1 The Employee shall receive a salary and benefits as compensation for the duties performed under this agreement.",
		"Section 2 Either party may terminate this agreement upon thirty days written notice to the other party at any time.",
		"Section 3 The weather is nice today and everyone went to the park to enjoy the sunshine and fresh air together.",
		"Section 4 Short clause about salary terms.",
	}

	got := Segment(sentences)
	assert.Equal(t, sentences[:2], got)
}

func TestSegment_JoinsSentencesUntilNextStart(t *testing.T) {
	sentences := []string{
		"1. The Company shall pay the Employee a salary.",
		"Payment is due monthly under the terms of this agreement between the parties.",
		"2. Either party may end this contract.",
	}

	got := Segment(sentences)
	require.Len(t, got, 1)
	assert.Equal(t, sentences[0]+" "+sentences[1], got[0])
}

func TestSegment_LimitsToEightClauses(t *testing.T) {
	var sentences []string
	for i := 1; i <= 12; i++ {
		sentences = append(sentences, fmt.Sprintf(
			"Section %d The Employee shall receive salary and benefits as compensation for every duty performed under this agreement.", i))
	}

	got := Segment(sentences)
	require.Len(t, got, 8)
	assert.True(t, strings.HasPrefix(got[0], "Section 1 "))
	assert.True(t, strings.HasPrefix(got[7], "Section 8 "))
	for _, c := range got {
		assert.Greater(t, len(strings.Fields(c)), 15)
		assert.True(t, IsLegal(c))
	}
}

func TestSegment_Empty(t *testing.T) {
	assert.Empty(t, Segment(nil))
	assert.Empty(t, Segment(Tokenize("")))
}

func TestSimplify(t *testing.T) {
	t.Run("replaces jargon", func(t *testing.T) {
		in := "WHEREAS the Employee shall receive salary. The Employee shall not disclose such data pursuant to the policy."
		want := "since the Employee must receive salary. The Employee must not disclose this data according to the policy."
		assert.Equal(t, want, Simplify(in))
	})

	t.Run("whole words only", func(t *testing.T) {
		in := "Add the shallot to the saidment and herein."
		assert.Equal(t, "Add the shallot to the saidment and in this document.", Simplify(in))
	})

	t.Run("non-ASCII letters count as word characters", func(t *testing.T) {
		assert.Equal(t, "Ñsuch naïveshall", Simplify("Ñsuch naïveshall"))
		assert.Equal(t, "suchÑ shallé", Simplify("suchÑ shallé"))
		assert.Equal(t, "this, «must» (must)", Simplify("such, «shall» (shall)"))
	})

	t.Run("adjacent matches", func(t *testing.T) {
		assert.Equal(t, "must must", Simplify("shall shall"))
		assert.Equal(t, "shallshall", Simplify("shallshall"))
	})

	t.Run("plain text round trips modulo whitespace", func(t *testing.T) {
		in := "  The cat sat\n\non the   mat.  "
		assert.Equal(t, "The cat sat on the mat.", Simplify(in))
	})

	t.Run("idempotent on plain text", func(t *testing.T) {
		in := "The employee will be paid every month."
		assert.Equal(t, Simplify(in), Simplify(Simplify(in)))
	})
}

func TestKeyPoints(t *testing.T) {
	text := "Short legal agreement terms. " +
		"The Company shall pay the Employee a salary and benefits every month of the year. " +
		"The weather is nice today and everyone went to the park to enjoy the sunshine."

	got := KeyPoints(text)
	assert.Equal(t, []string{"The Company shall pay the Employee a salary and benefits every month of the year."}, got)
}

func TestKeyPoints_AtMostSix(t *testing.T) {
	sentence := "The Company shall pay the Employee a salary and benefits every month of the year. "
	got := KeyPoints(strings.Repeat(sentence, 10))
	assert.Len(t, got, 6)
	for _, p := range got {
		n := len(strings.Fields(p))
		assert.True(t, n > 8 && n < 50)
	}
}
