package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alleslabs/aldus-api/internal/common"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/validator"
)

var validateConcurrency int

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every dataset file under the data root",
	Long: `Decode every dataset file with the same loader the API uses and report files that
fail to decode, contracts whose code does not exist, duplicate entity slugs and
duplicate record keys. Exits non-zero when any error is found.`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateConcurrency, "concurrency", 0, "chain/network directories checked in parallel (default: one per CPU)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	log := logger.NewComponentLoggerFromConfig(common.ComponentValidator, cfg.Logging)
	v := validator.New(newLoader(cfg), validateConcurrency, log)

	report, err := v.Run(ctx)
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}

	printReport(cmd.OutOrStdout(), cfg.Data.Root, report)

	if report.Failed() {
		return fmt.Errorf("dataset tree %s has errors", cfg.Data.Root)
	}
	return nil
}

func printReport(w io.Writer, root string, report *validator.Report) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	bold.Fprintf(w, "Validated %s (%d chain/network directories)\n", root, len(report.Scopes))

	var errs, warnings int
	for _, issue := range report.Issues {
		where := issue.Dataset
		if issue.Scope != "" {
			where = issue.Scope + "/" + issue.Dataset
		}

		switch issue.Severity {
		case validator.SeverityError:
			errs++
			red.Fprint(w, "  ERROR ")
		default:
			warnings++
			yellow.Fprint(w, "  WARN  ")
		}
		fmt.Fprintf(w, "%s: %s\n", where, issue.Message)
	}

	switch {
	case errs > 0:
		red.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warnings)
	case warnings > 0:
		yellow.Fprintf(w, "OK with %d warning(s)\n", warnings)
	default:
		green.Fprintln(w, "OK")
	}
}
