package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"legalzen-backend/analyzer"
	"legalzen-backend/extractor"
	"legalzen-backend/logging"
	"legalzen-backend/models"
)

type rootOptions struct {
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "legalzen",
		Short:         "Rule-based plain-language analysis of legal documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newAnalyzeCommand(opts), newAskCommand(opts))
	return cmd
}

func (o *rootOptions) analyzer() *analyzer.Analyzer {
	logger := logging.New(logging.Config{Level: o.logLevel, Development: true})
	return analyzer.New(analyzer.WithLogger(logger))
}

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a TXT, PDF, DOC or DOCX document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			analysis := opts.analyzer().Analyze(text)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}
			printAnalysis(cmd.OutOrStdout(), analysis)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

func newAskCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <file> <question>",
		Short: "Ask a question about a document",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args[1:], " "))
			if question == "" {
				return fmt.Errorf("no question provided")
			}

			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), opts.analyzer().Answer(question, text))
			return nil
		},
	}
}

func readDocument(path string) (string, error) {
	format, err := extractor.FormatFromFilename(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := extractor.Extract(format, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}

func printAnalysis(w io.Writer, a *models.DocumentAnalysis) {
	fmt.Fprintf(w, "Document type: %s\n", a.DocumentType)
	fmt.Fprintf(w, "Summary: %s\n", a.Summary)

	if len(a.Clauses) > 0 {
		fmt.Fprintln(w, "\nClauses:")
		for i, c := range a.Clauses {
			fmt.Fprintf(w, "%2d. %s\n", i+1, c.Title)
			fmt.Fprintf(w, "    Original:    %s\n", c.Original)
			fmt.Fprintf(w, "    Simplified:  %s\n", c.Simplified)
			fmt.Fprintf(w, "    Explanation: %s\n", c.Explanation)
		}
	}

	if len(a.KeyPoints) > 0 {
		fmt.Fprintln(w, "\nKey points:")
		for _, p := range a.KeyPoints {
			fmt.Fprintf(w, " - %s\n", p)
		}
	}
}
