package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

func historyCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage saved analyses",
	}

	c.AddCommand(
		historyListCmd(g),
		historyShowCmd(g),
		historyDeleteCmd(g),
		historyQueryCmd(g),
	)
	return c
}

// withHistory opens the workspace and runs fn against its history.
func withHistory(g *globalFlags, fn func(ws *app.Workspace) error) error {
	ws, cleanup, err := openWorkspace(g, false)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := requireHistory(ws); err != nil {
		return err
	}
	return fn(ws)
}

func historyListCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved analyses, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withHistory(g, func(ws *app.Workspace) error {
				refs, err := ws.History.List()
				if err != nil {
					return err
				}
				return printRefs(os.Stdout, refs, format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printRefs(w io.Writer, refs []domain.RecordRef, format string) error {
	switch format {
	case "json":
		return writeJSON(w, refs)
	case "pretty", "":
	default:
		return unsupportedFormat(format)
	}

	if len(refs) == 0 {
		fmt.Fprintln(w, "(no saved analyses)")
		return nil
	}
	for _, r := range refs {
		fmt.Fprintf(w, "- %s  %s  %s\n", shortID(r.ID), r.CreatedAt.Local().Format(time.DateTime), r.Kind)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func historyShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved analysis (any unique id prefix works)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withHistory(g, func(ws *app.Workspace) error {
				rec, err := ws.History.Show(args[0])
				if err != nil {
					return err
				}
				if format == "json" {
					return writeJSON(os.Stdout, rec)
				}
				fmt.Fprintf(os.Stdout, "Saved:     %s\n", rec.CreatedAt.Local().Format(time.DateTime))
				return printAnalysis(os.Stdout, usecase.AnalyzeResult{Analysis: rec.Analysis, RecordID: rec.ID}, format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func historyDeleteCmd(g *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete [ID]",
		Short: "Delete one saved analysis, or all of them with --all",
		Args: func(_ *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all takes no ID")
			}
			if !all && len(args) != 1 {
				return fmt.Errorf("expected exactly one ID (or --all)")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return withHistory(g, func(ws *app.Workspace) error {
				if all {
					n, err := ws.History.DeleteAll()
					if err != nil {
						return err
					}
					fmt.Printf("Deleted %d record(s)\n", n)
					return nil
				}

				if err := ws.History.Delete(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every saved analysis")
	return cmd
}

func historyQueryCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "query ID JSONPATH",
		Short:   "Evaluate a JSONPath expression against a saved analysis",
		Example: `  numdna history query 3f2a '$.analysis.candidates[*].numeral'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withHistory(g, func(ws *app.Workspace) error {
				out, err := ws.History.Query(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			})
		},
	}
}
