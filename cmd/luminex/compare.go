package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/luminexhq/luminex-cli/internal/cli"
	"github.com/luminexhq/luminex-cli/internal/common"
	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/config"
	"github.com/luminexhq/luminex-cli/internal/intake"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Upload an invoice and purchase order for comparison",
		Long: `Upload an invoice and a purchase order to the comparison backend and
review the field-by-field result.

Without flags an interactive screen opens for picking both files. With
--invoice and --po the files are submitted directly; add --plain to print
the result instead of opening the verification screen.

Examples:
  # Interactive intake
  luminex compare

  # Direct submission, interactive verification
  luminex compare --invoice inv_001.pdf --po po_001.pdf

  # Fully non-interactive
  luminex compare --invoice inv_001.pdf --po po_001.pdf --plain`,
		RunE: runCompare,
	}

	cmd.Flags().String("invoice", "", "invoice file (PDF, PNG or JPG)")
	cmd.Flags().String("po", "", "purchase order file (PDF, PNG or JPG)")
	cmd.Flags().Bool("plain", false, "print the result instead of opening the verification screen")
	cmd.Flags().String("start-dir", "", "starting directory for the file picker")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	invoicePath, _ := cmd.Flags().GetString("invoice")
	poPath, _ := cmd.Flags().GetString("po")
	plain, _ := cmd.Flags().GetBool("plain")
	startDir, _ := cmd.Flags().GetString("start-dir")

	invoicePath = config.ExpandPath(invoicePath)
	poPath = config.ExpandPath(poPath)
	startDir = config.ExpandPath(startDir)

	channel, err := newChannel()
	if err != nil {
		return err
	}
	backend := newClient()

	// Interactive intake when no files are given up front.
	if invoicePath == "" && poPath == "" {
		return tui.Run(cmd.Context(),
			tui.WithClient(backend),
			tui.WithChannel(channel),
			tui.WithStartDir(startDir),
		)
	}

	if invoicePath == "" || poPath == "" {
		return fmt.Errorf("both --invoice and --po are required for direct submission")
	}

	form := intake.NewForm()
	if outcome := form.SubmitCandidate(model.RoleInvoice, invoicePath); outcome.Err != nil {
		return common.NewUserError("invoice not accepted", outcome.Err)
	}
	if outcome := form.SubmitCandidate(model.RolePurchaseOrder, poPath); outcome.Err != nil {
		return common.NewUserError("purchase order not accepted", outcome.Err)
	}

	invoice, po, err := form.Files()
	if err != nil {
		return err
	}

	slog.Info("Submitting documents", "invoice", invoice.Name, "po", po.Name, "backend", backend.BaseURL())

	result, err := backend.Compare(cmd.Context(), invoice, po)
	if err != nil {
		return common.NewUserError("comparison failed", err)
	}

	if err := channel.Publish(result); err != nil {
		slog.Warn("Failed to publish comparison result", "error", err)
	}

	if plain {
		cmd.Print(cli.RenderSummary(compare.Normalize(result)))
		return nil
	}

	return tui.Run(cmd.Context(),
		tui.WithClient(backend),
		tui.WithChannel(channel),
		tui.WithResult(result),
	)
}
