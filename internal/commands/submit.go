package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fiskal-dev/fiskal/internal/config"
	"github.com/fiskal-dev/fiskal/internal/elster"
	"github.com/fiskal-dev/fiskal/internal/model"
	"github.com/fiskal-dev/fiskal/internal/period"
	"github.com/fiskal-dev/fiskal/internal/store"
)

func newSubmitCommand() *cobra.Command {
	var repoDir string
	var year, quarter int
	var confirm bool
	var ticket string

	cmd := &cobra.Command{
		Use:       "submit <ustva|zm|euer>",
		Short:     "Validate, generate and confirm an official filing",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ustva", "zm", "euer"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := period.Year(year)
			if quarter != 0 {
				p = period.Quarter(year, quarter)
			}
			return runSubmit(cmd, repoDir, model.SubmissionType(args[0]), p, confirm, ticket)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().IntVar(&year, "year", 0, "filing year (required)")
	_ = cmd.MarkFlagRequired("year")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "quarter 1-4")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "mark the filing as submitted after generation")
	cmd.Flags().StringVar(&ticket, "ticket", "", "authority transfer ticket to attach on confirm")

	return cmd
}

func runSubmit(cmd *cobra.Command, repoDir string, subType model.SubmissionType, p period.Period, confirm bool, ticket string) error {
	cfg, err := config.Load(filepath.Join(repoDir, "fiskal.yaml"))
	if err != nil {
		return err
	}

	client := elster.NewClient(cfg.Elster.BaseURL, nil)
	log := store.NewSubmissionLog(repoDir)

	workflow, err := elster.NewWorkflow(client, log, subType, p, cfg.Elster.TestMode)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	validation, err := workflow.Validate(ctx)
	if err != nil {
		return err
	}
	for _, warning := range validation.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	if !validation.Valid {
		for _, msg := range validation.Errors {
			fmt.Printf("error: %s\n", msg)
		}
		return fmt.Errorf("filing %s %s has %d blocking errors", subType, p.Key(), len(validation.Errors))
	}

	generated, err := workflow.Generate(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("generated submission %s for %s (%d bytes)\n",
		generated.Submission.ID, p.Key(), len(generated.XML))

	if !confirm {
		fmt.Println("run again with --confirm to mark the filing as submitted")
		return nil
	}

	if err := workflow.Confirm(ctx, ticket); err != nil {
		// Deliberately no retry here: the filing may already have gone
		// through on the authority side.
		return fmt.Errorf("confirming submission %s failed, verify its status before retrying: %w",
			generated.Submission.ID, err)
	}
	fmt.Printf("submission %s confirmed\n", generated.Submission.ID)
	return nil
}
