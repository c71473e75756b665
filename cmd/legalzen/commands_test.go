package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalzen-backend/extractor"
	"legalzen-backend/models"
)

const employmentText = "WHEREAS the Employee shall receive salary of $60,000 per annum. " +
	"The Company shall pay benefits including health insurance. " +
	"Employee agrees to confidentiality and shall not disclose trade secrets to any third party without consent."

func writeDocument(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeDocument(t, "contract.txt", employmentText)

	out, err := runCommand(t, "analyze", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Document type: legal document\n")
	assert.Contains(t, out, " 1. 💰 Compensation & Payment\n")
	assert.Contains(t, out, "    Simplified:  since the Employee must receive salary")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	path := writeDocument(t, "contract.txt", employmentText)

	out, err := runCommand(t, "analyze", "--json", path)
	require.NoError(t, err)

	var analysis models.DocumentAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, models.DocumentTypeGeneric, analysis.DocumentType)
	assert.Len(t, analysis.Clauses, 1)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	_, err := runCommand(t, "analyze")
	assert.Error(t, err)

	_, err = runCommand(t, "analyze", writeDocument(t, "image.png", "x"))
	assert.ErrorIs(t, err, extractor.ErrUnsupportedFormat)

	_, err = runCommand(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = runCommand(t, "analyze", writeDocument(t, "blank.txt", "  "))
	assert.ErrorIs(t, err, extractor.ErrEmptyDocument)
}

func TestAskCommand(t *testing.T) {
	path := writeDocument(t, "contract.txt", employmentText)

	out, err := runCommand(t, "ask", path, "What", "is", "my", "salary?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Regarding compensation: WHEREAS the Employee shall receive salary"))
	assert.True(t, strings.HasSuffix(out, "Please review the compensation section for complete details.\n"))
}

func TestAskCommand_Errors(t *testing.T) {
	path := writeDocument(t, "contract.txt", employmentText)

	_, err := runCommand(t, "ask", path)
	assert.Error(t, err)

	_, err = runCommand(t, "ask", path, "   ")
	assert.EqualError(t, err, "no question provided")
}
