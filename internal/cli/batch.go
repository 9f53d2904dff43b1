package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

func batchCmd(g *globalFlags) *cobra.Command {
	var profile string
	var format string
	var gen generateFlags

	c := &cobra.Command{
		Use:   "batch",
		Short: "Analyze every input of a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, false)
			if err != nil {
				return err
			}
			defer cleanup()

			base := ws.Request(domain.Input{})
			if err := gen.apply(cmd, &base); err != nil {
				return err
			}

			res, err := ws.Batch.Execute(cmd.Context(), ws.ProfilePath(profile), base)
			if err != nil {
				return err
			}

			if err := printBatch(os.Stdout, res, format); err != nil {
				return err
			}
			if n := res.Failed(); n > 0 {
				return fmt.Errorf("batch failed (%d failed input(s))", n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&profile, "profile", "p", "", "Profile name or path (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	gen.register(c)

	_ = c.MarkFlagRequired("profile")
	return c
}

func printBatch(w io.Writer, res usecase.BatchResult, format string) error {
	switch format {
	case "json":
		return writeJSON(w, res)
	case "pretty", "":
	default:
		return unsupportedFormat(format)
	}

	fmt.Fprintf(w, "Profile: %s (%d input(s))\n\n", res.Profile, len(res.Items))
	for _, it := range res.Items {
		if it.Err != "" {
			fmt.Fprintf(w, "== [FAIL] %s\n  error: %s\n\n", it.Label, it.Err)
			continue
		}
		fmt.Fprintf(w, "== %s\n", it.Label)
		printPrettyAnalysis(w, it.Result)
		fmt.Fprintln(w)
	}
	return nil
}
