// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var firesCmd = &cobra.Command{
	Use:   "fires",
	Short: "List fires registered to the account",
	RunE:  runFires,
}

func init() {
	rootCmd.AddCommand(firesCmd)
}

func runFires(cmd *cobra.Command, args []string) error {
	client, err := newCloudClient()
	if err != nil {
		return err
	}

	fires, err := client.ListFires(cmd.Context())
	if err != nil {
		return err
	}

	if len(fires) == 0 {
		fmt.Println("No fires registered to this account.")
		return nil
	}

	for _, fire := range fires {
		fmt.Printf("%s  %s\n", fire.FireID, fire.FriendlyName)
	}
	return nil
}
