// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deviantintegral/flameconnect-sub000/internal/cloud"
	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

var watchInterval time.Duration

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read and display all fireplace parameters",
	RunE:  runStatus,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll fireplace parameters and print changes",
	Long: `Poll the fireplace on an interval and print any parameter whose value
changed since the previous poll. The first poll prints everything.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "Poll interval")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newCloudClient()
	if err != nil {
		return err
	}

	fireID, err := resolveFireID(cmd.Context(), client)
	if err != nil {
		return err
	}

	params, err := client.ReadParameters(cmd.Context(), fireID)
	if err != nil {
		return err
	}

	printParameters(params)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, err := newCloudClient()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fireID, err := resolveFireID(ctx, client)
	if err != nil {
		return err
	}

	fmt.Printf("Watching fire %s every %s (Ctrl+C to stop)\n\n", fireID, watchInterval)

	previous := make(map[flameconnect.ParameterID]flameconnect.Parameter)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		changed, err := pollOnce(ctx, client, fireID, previous)
		if err != nil {
			logger.Warn("poll failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "[%s] poll failed: %v\n", time.Now().Format("15:04:05"), err)
		} else {
			printParameters(changed)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// pollOnce reads all parameters and returns those that differ from the
// previous poll, updating previous in place.
func pollOnce(ctx context.Context, client *cloud.Client, fireID string, previous map[flameconnect.ParameterID]flameconnect.Parameter) ([]flameconnect.Parameter, error) {
	params, err := client.ReadParameters(ctx, fireID)
	if err != nil {
		return nil, err
	}

	changed := make([]flameconnect.Parameter, 0, len(params))
	for _, p := range params {
		if old, seen := previous[p.ID()]; !seen || old != p {
			changed = append(changed, p)
			previous[p.ID()] = p
		}
	}
	return changed, nil
}

// printParameters renders parameters with advisory range warnings.
func printParameters(params []flameconnect.Parameter) {
	for _, p := range params {
		fmt.Print(flameconnect.FormatParameter(p))
		for _, anomaly := range flameconnect.ValidateParameter(p) {
			fmt.Printf("  WARNING: %s\n", anomaly.Message)
		}
	}
}
