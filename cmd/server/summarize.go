package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dealer-analytics/internal/aggregators"
	"dealer-analytics/internal/models"

	"github.com/spf13/cobra"
)

// newSummarizeCmd runs the aggregator offline over a JSON array of events,
// keeping only those inside [from, to].
func newSummarizeCmd() *cobra.Command {
	var (
		file string
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a JSON file of events for a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeStart, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			rangeEnd, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read events: %w", err)
			}
			var events []models.Event
			if err := json.Unmarshal(data, &events); err != nil {
				return fmt.Errorf("failed to decode events: %w", err)
			}

			rangeStart, rangeEnd = rangeStart.UTC(), rangeEnd.UTC()
			inRange := make([]models.Event, 0, len(events))
			for _, event := range events {
				if !event.Timestamp.Before(rangeStart) && !event.Timestamp.After(rangeEnd) {
					inRange = append(inRange, event)
				}
			}

			summary := aggregators.NewEventAggregator().Aggregate(inRange, rangeStart, rangeEnd)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(summary)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a JSON array of events")
	cmd.Flags().StringVar(&from, "from", "", "range start, RFC3339")
	cmd.Flags().StringVar(&to, "to", "", "range end, RFC3339")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
