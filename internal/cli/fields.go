package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/api"
)

func fieldsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "fields",
		Short: "List the field catalogue",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printFields(os.Stdout, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|markdown")
	return c
}

func printFields(w io.Writer, format string) error {
	fields := api.FieldsView()

	switch format {
	case "json":
		return writeJSON(w, fields)
	case "markdown", "md":
		return printFieldsMarkdown(w, fields)
	case "pretty", "":
	default:
		return unsupportedFormat(format)
	}

	for _, f := range fields {
		tone := "bad"
		if f.Good {
			tone = "good"
		}
		fmt.Fprintf(w, "%s %s (%s)\n", f.Field, f.Label, tone)
		fmt.Fprintf(w, "  pairs:     %s\n", joinPairs(f.Pairs))
		fmt.Fprintf(w, "  keywords:  %s\n", strings.Join(f.Keywords, "、"))
		fmt.Fprintf(w, "  strengths: %s\n", f.Strengths)
		fmt.Fprintf(w, "  weakness:  %s\n\n", f.Weaknesses)
	}
	return nil
}

func fieldsMarkdown(fields []api.FieldView) string {
	var b strings.Builder
	b.WriteString("# Fields\n\n")
	b.WriteString("| Field | Label | Tone | Pairs |\n|---|---|---|---|\n")
	for _, f := range fields {
		tone := "bad"
		if f.Good {
			tone = "good"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", f.Field, f.Label, tone, joinPairs(f.Pairs))
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "\n## %s %s\n\n", f.Label, f.Field)
		fmt.Fprintf(&b, "- **Keywords:** %s\n", strings.Join(f.Keywords, "、"))
		fmt.Fprintf(&b, "- **Strengths:** %s\n", f.Strengths)
		fmt.Fprintf(&b, "- **Weaknesses:** %s\n", f.Weaknesses)
	}
	return b.String()
}

func printFieldsMarkdown(w io.Writer, fields []api.FieldView) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(fieldsMarkdown(fields))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
