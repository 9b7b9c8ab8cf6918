// Package main provides the CLI entry point for xlreport.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlreport-go/pkg/xlreport"
)

var (
	configPath string
	inputPaths []string
	outputPath string
	logLevel   string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlreport",
		Short: "Build styled Excel reports from CSV tables",
		Long: `xlreport loads CSV tables, transforms them, writes one sheet per table
and styles the workbook with number formats, fitted columns and bar charts.`,
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Build a report from a YAML job file",
		Args:  cobra.NoArgs,
		RunE:  runJob,
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Job file (YAML)")
	runCmd.Flags().StringSliceVar(&inputPaths, "input", nil, "Override sheet inputs in order (name=path or path)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Override the output workbook path")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	_ = runCmd.MarkFlagRequired("config")

	inspectCmd := &cobra.Command{
		Use:   "inspect [report.xlsx]",
		Short: "Print the layout, formats and charts of a report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(runCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runJob(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}

	job, err := xlreport.LoadJob(configPath)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if err := overrideInputs(job, inputPaths); err != nil {
		return err
	}
	if outputPath != "" {
		job.Output = outputPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := xlreport.Run(ctx, job, xlreport.Options{Logger: logger}); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report failed: %w", err)
	}
	return nil
}

// overrideInputs replaces sheet inputs, either by sheet name ("name=path")
// or positionally.
func overrideInputs(job *xlreport.Job, inputs []string) error {
	for i, in := range inputs {
		if name, path, ok := strings.Cut(in, "="); ok {
			found := false
			for k := range job.Sheets {
				if job.Sheets[k].Name == name {
					job.Sheets[k].Input = path
					found = true
				}
			}
			if !found {
				return fmt.Errorf("--input %q: no sheet named %q", in, name)
			}
			continue
		}
		if i >= len(job.Sheets) {
			return fmt.Errorf("--input %q: job has only %d sheets", in, len(job.Sheets))
		}
		job.Sheets[i].Input = in
	}
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func inspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	report, err := xlreport.Inspect(inputPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
