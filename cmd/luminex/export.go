package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luminexhq/luminex-cli/internal/cli"
	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/config"
	"github.com/luminexhq/luminex-cli/internal/csvexport"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the last comparison result as CSV",
		RunE:  runExport,
	}

	cmd.Flags().StringP("out", "o", "comparison.csv", "output file, or - for stdout")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")

	channel, err := newChannel()
	if err != nil {
		return err
	}

	result, ok := channel.Consume()
	if !ok {
		cmd.Println(cli.SubtleStyle.Render("No comparison result to export yet. Run 'luminex compare' first."))
		return nil
	}

	summary := compare.Normalize(result)

	if out == "-" {
		return csvexport.NewWriter(cmd.OutOrStdout()).WriteSummary(summary)
	}

	out = config.ExpandPath(out)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := csvexport.NewWriter(f).WriteSummary(summary); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported %d rows to %s", len(summary.Rows), out)))
	return nil
}
