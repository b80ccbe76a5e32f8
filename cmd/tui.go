// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/deviantintegral/flameconnect-sub000/internal/cloud"
	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive TUI for monitoring and controlling fires",
	Long: `Control FlameConnect fires via an interactive terminal UI.

The TUI lists the fires on the account, polls the selected fire for its
current parameters, and lets you change the target temperature and the
operating mode. Tab switches between the fire list and the controls.
Arrow keys navigate the fire list, r forces a refresh, q quits.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

const fetchTimeout = 10 * time.Second

func runTUI(cmd *cobra.Command, args []string) error {
	client, err := newCloudClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	fires, err := client.ListFires(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("listing fires: %w", err)
	}
	if len(fires) == 0 {
		return fmt.Errorf("no fires registered on this account")
	}

	m := initialControlModel(client, fires)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

//////////////////////////////////////////////////////////////
// Fetch and Write Commands
//////////////////////////////////////////////////////////////

// fetchParamsCmd reads all parameters of a fire in the background.
func fetchParamsCmd(client *cloud.Client, fireID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		params, err := client.ReadParameters(ctx, fireID)
		if err != nil {
			return errMsg{fireID: fireID, err: err}
		}
		return paramsMsg{fireID: fireID, params: params}
	}
}

// writeParamCmd writes a single parameter and reports the outcome.
func writeParamCmd(client *cloud.Client, fireID string, p flameconnect.Parameter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := client.WriteParameters(ctx, fireID, []flameconnect.Parameter{p}); err != nil {
			return errMsg{fireID: fireID, err: err}
		}
		return writeDoneMsg{fireID: fireID, kind: p.ID()}
	}
}
