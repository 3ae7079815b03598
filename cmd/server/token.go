package main

import (
	"fmt"
	"time"

	"dealer-analytics/internal/shared/auth"
	"dealer-analytics/internal/shared/configs"

	"github.com/spf13/cobra"
)

// newTokenCmd issues a dashboard token signed with the configured secret.
func newTokenCmd(configPath *string) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a dashboard access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			token, err := auth.IssueToken(cfg.Auth.JWTSecret, subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "dashboard", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
