package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
	"github.com/jonathan/ai-job-dashboard/internal/insights"
	"github.com/jonathan/ai-job-dashboard/internal/observability"
)

var (
	statsDataPath string
	statsTop      int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard numbers to the terminal",
	Long:  `Load the job postings CSV and print the summary, top industries, top skills and salary quartiles per experience level.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsDataPath, "data", "", "Path to the job postings CSV")
	statsCmd.Flags().IntVar(&statsTop, "top", insights.TopN, "Number of industries and skills to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsTop < 1 {
		return fmt.Errorf("--top must be at least 1")
	}

	cfg, err := loadConfig(cmd, statsDataPath)
	if err != nil {
		return err
	}

	data, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	records := data.Records()

	report := insights.Industries(records)
	report.TopIndustries = insights.TopIndustries(records, statsTop)

	p := observability.NewPrinter(cmd.OutOrStdout())
	p.PrintSummary(data.Source(), insights.Summarize(records))
	p.PrintIndustries(report)
	p.PrintSkills(insights.TopSkills(records, statsTop))
	p.PrintSalaryByExperience(insights.SalaryByExperience(records))
	return nil
}
