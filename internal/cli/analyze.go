package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

// generateFlags are the per-invocation overrides of the generation config.
type generateFlags struct {
	length   int
	count    int
	affix    string
	affixPos string
	seed     uint64
	noPad    bool
	noSave   bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.length, "length", 0, "Numeral length including the affix (default from numdna.yaml)")
	cmd.Flags().IntVar(&f.count, "count", 0, "Number of candidates (default from numdna.yaml)")
	cmd.Flags().StringVar(&f.affix, "affix", "", "Literal spliced into every numeral (1-2 letters or 1-4 digits)")
	cmd.Flags().StringVar(&f.affixPos, "affix-pos", "", "Affix position: begin|center|end")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (0 = random)")
	cmd.Flags().BoolVar(&f.noPad, "no-pad", false, "Return short numerals instead of padding dead ends")
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "Do not save the analysis to history")
}

// apply overrides req with every flag the user actually set.
func (f *generateFlags) apply(cmd *cobra.Command, req *usecase.AnalyzeRequest) error {
	fl := cmd.Flags()
	if fl.Changed("length") {
		req.Generate.Length = f.length
	}
	if fl.Changed("count") {
		req.Generate.Count = f.count
	}
	if fl.Changed("affix") {
		req.Generate.Affix.Value = f.affix
		if req.Generate.Affix.Position == domain.AffixNone && !fl.Changed("affix-pos") {
			req.Generate.Affix.Position = domain.AffixEnd
		}
	}
	if fl.Changed("affix-pos") {
		pos, err := domain.ParseAffixPosition(f.affixPos)
		if err != nil {
			return err
		}
		req.Generate.Affix.Position = pos
	}
	if fl.Changed("seed") {
		req.Seed = f.seed
	}
	if f.noPad {
		req.Generate.Pad = false
	}
	if f.noSave {
		req.Save = false
	}
	return nil
}

func analyzeCmd(g *globalFlags) *cobra.Command {
	var kind string
	var value string
	var format string
	var gen generateFlags

	c := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a value and generate compensating numerals",
		Example: `  numdna analyze --kind phone --value 0912345678
  numdna analyze --kind name --value 王小明 --length 8 --affix 88 --affix-pos end`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := domain.ParseInputKind(kind)
			if err != nil {
				return err
			}

			ws, cleanup, err := openWorkspace(g, true)
			if err != nil {
				return err
			}
			defer cleanup()

			req := ws.Request(domain.Input{Kind: k, Value: value})
			if err := gen.apply(cmd, &req); err != nil {
				return err
			}

			res, err := ws.Analyze.Execute(cmd.Context(), req)
			if err != nil {
				// a failed save still produced an analysis worth showing
				if len(res.Analysis.Pairs) > 0 {
					_ = printAnalysis(os.Stdout, res, format)
				}
				return err
			}
			return printAnalysis(os.Stdout, res, format)
		},
	}

	c.Flags().StringVarP(&kind, "kind", "k", "", "Input kind: name|id|phone|birth|custom (required)")
	c.Flags().StringVarP(&value, "value", "v", "", "Value to analyze (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	gen.register(c)

	_ = c.MarkFlagRequired("kind")
	_ = c.MarkFlagRequired("value")
	return c
}

func printAnalysis(w io.Writer, res usecase.AnalyzeResult, format string) error {
	switch format {
	case "json":
		return writeJSON(w, res)
	case "pretty", "":
		printPrettyAnalysis(w, res)
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format %q", format)
}

func printPrettyAnalysis(w io.Writer, res usecase.AnalyzeResult) {
	a := res.Analysis

	fmt.Fprintf(w, "Input:     %s %s\n", a.Input.Kind, a.Input.Value)
	fmt.Fprintf(w, "Digits:    %s\n", a.Digits)
	if a.Empty {
		fmt.Fprintln(w, "\n(not enough digits to form a pair)")
		return
	}

	fmt.Fprintf(w, "Pairs:     %s\n", joinPairs(a.Pairs))
	fmt.Fprintf(w, "Raw:       %s\n", formatCounts(a.Result.Raw))
	fmt.Fprintf(w, "Adjusted:  %s\n", formatCounts(a.Result.Adjusted))
	if res.RecordID != "" {
		fmt.Fprintf(w, "Record:    %s\n", res.RecordID)
	}

	if lines := a.Result.LogLines(); len(lines) > 0 {
		fmt.Fprintln(w, "\nAdjustments:")
		for _, l := range lines {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}

	if details := a.Details(); len(details) > 0 {
		fmt.Fprintln(w, "\nFields:")
		for _, d := range details {
			fmt.Fprintf(w, "  %s %s ×%d  %s\n", d.Field, d.Field.Label(), d.Count, strings.Join(d.Keywords, "、"))
		}
	}

	fmt.Fprintln(w, "\nCandidates:")
	for i, c := range a.Candidates {
		fmt.Fprintf(w, "  %d. %-*s  %s%s\n", i+1, a.Request.Length, c.Numeral, joinPairs(c.Chain), candidateFlags(c))
	}
}

func joinPairs[P ~string](pairs []P) string {
	if len(pairs) == 0 {
		return "-"
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}

func formatCounts(c domain.CountMap) string {
	var parts []string
	for _, f := range append([]domain.Field{domain.FieldUnknown}, domain.Fields...) {
		if n := c.Get(f); n != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", f, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func candidateFlags(c domain.Candidate) string {
	var flags []string
	if c.Degraded {
		flags = append(flags, "short")
	}
	if c.FallbackUsed {
		flags = append(flags, "fallback")
	}
	if c.AdjacencyBroken {
		flags = append(flags, "padded")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  [" + strings.Join(flags, ", ") + "]"
}
