package main

import (
	"github.com/spf13/cobra"

	"github.com/luminexhq/luminex-cli/internal/cli"
	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/tui"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Review the last comparison result",
		Long: `Review the comparison result handed off by the most recent
'luminex compare'. When nothing was handed off this renders an empty
state rather than an error.`,
		RunE: runVerify,
	}

	cmd.Flags().Bool("plain", false, "print the result instead of opening the verification screen")

	return cmd
}

func runVerify(cmd *cobra.Command, _ []string) error {
	plain, _ := cmd.Flags().GetBool("plain")

	channel, err := newChannel()
	if err != nil {
		return err
	}

	result, ok := channel.Consume()
	if !ok {
		cmd.Println(cli.SubtleStyle.Render("No comparison result to verify yet. Run 'luminex compare' first."))
		return nil
	}

	if plain {
		cmd.Print(cli.RenderSummary(compare.Normalize(result)))
		return nil
	}

	return tui.Run(cmd.Context(),
		tui.WithClient(newClient()),
		tui.WithChannel(channel),
		tui.WithResult(result),
	)
}
