package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the combined career dashboard for a user",
	RunE:  runDashboard,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print job match counters for a user",
	RunE:  runStats,
}

var (
	dashboardUserID string
	statsUserID     string
)

func init() {
	dashboardCmd.Flags().StringVar(&dashboardUserID, "user-id", "", "User UUID (required)")
	_ = dashboardCmd.MarkFlagRequired("user-id")

	statsCmd.Flags().StringVar(&statsUserID, "user-id", "", "User UUID (required)")
	_ = statsCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(dashboardUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	dashboard, err := svc.GetDashboard(ctx, userID)
	if err != nil {
		return err
	}
	return printJSON(dashboard)
}

func runStats(_ *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(statsUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := context.Background()
	svc, _, cleanup, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := svc.GetCareerStats(ctx, userID)
	if err != nil {
		return err
	}
	return printJSON(stats)
}
