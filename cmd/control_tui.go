// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deviantintegral/flameconnect-sub000/internal/cloud"
	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

//////////////////////////////////////////////////////////////
// Constants
//////////////////////////////////////////////////////////////

const (
	refreshIntervalSeconds = 5 // Poll the selected fire every N seconds
	maxTargetTempInput     = 35.0
)

// Focus states
const (
	focusFireList = iota
	focusTempInput
	focusModeButton
)

//////////////////////////////////////////////////////////////
// Types
//////////////////////////////////////////////////////////////

// fireItem wraps a cloud fire for the list component
type fireItem struct {
	fire cloud.Fire
}

func (f fireItem) Title() string {
	if f.fire.FriendlyName != "" {
		return f.fire.FriendlyName
	}
	return f.fire.FireID
}
func (f fireItem) Description() string { return f.fire.FireID }
func (f fireItem) FilterValue() string { return f.fire.FriendlyName }

// eventLogEntry is one line in the TUI event log
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// controlModel is the Bubble Tea model for the control TUI
type controlModel struct {
	client *cloud.Client

	// Fire tracking
	fires    []cloud.Fire
	fireList list.Model

	// Parameter state for the selected fire
	params     map[flameconnect.ParameterID]flameconnect.Parameter
	lastUpdate time.Time
	fetching   bool

	// Control
	tempInput    textinput.Model
	focusedField int

	// UI state
	width    int
	height   int
	quitting bool

	eventLog      []eventLogEntry
	maxLogEntries int
}

//////////////////////////////////////////////////////////////
// Messages
//////////////////////////////////////////////////////////////

type controlTickMsg time.Time

type paramsMsg struct {
	fireID string
	params []flameconnect.Parameter
}

type errMsg struct {
	fireID string
	err    error
}

type writeDoneMsg struct {
	fireID string
	kind   flameconnect.ParameterID
}

//////////////////////////////////////////////////////////////
// Model Initialization
//////////////////////////////////////////////////////////////

func initialControlModel(client *cloud.Client, fires []cloud.Fire) controlModel {
	ti := textinput.New()
	ti.Placeholder = "22.0"
	ti.CharLimit = 5
	ti.Width = 8

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetHeight(2)
	items := make([]list.Item, len(fires))
	for i, f := range fires {
		items[i] = fireItem{fire: f}
	}
	fireList := list.New(items, delegate, 30, 10)
	fireList.Title = "Fires"
	fireList.SetShowStatusBar(false)
	fireList.SetShowHelp(false)
	fireList.SetFilteringEnabled(false)

	return controlModel{
		client:        client,
		fires:         fires,
		fireList:      fireList,
		params:        make(map[flameconnect.ParameterID]flameconnect.Parameter),
		tempInput:     ti,
		focusedField:  focusFireList,
		width:         80,
		height:        24,
		eventLog:      make([]eventLogEntry, 0),
		maxLogEntries: 100,
	}
}

//////////////////////////////////////////////////////////////
// Bubble Tea Interface
//////////////////////////////////////////////////////////////

func (m controlModel) Init() tea.Cmd {
	return tea.Batch(controlTickCmd(), m.refresh())
}

func controlTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return controlTickMsg(t)
	})
}

func (m controlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateListSize()

	case controlTickMsg:
		if !m.fetching && time.Since(m.lastUpdate) >= refreshIntervalSeconds*time.Second {
			cmds = append(cmds, m.refresh())
		}
		cmds = append(cmds, controlTickCmd())
		return m, tea.Batch(cmds...)

	case paramsMsg:
		m.fetching = false
		if msg.fireID != m.selectedFireID() {
			break // Stale response for a previously selected fire
		}
		m.applyParams(msg.params)
		m.lastUpdate = time.Now()

	case errMsg:
		m.fetching = false
		m.addLogEntry(fmt.Sprintf("ERROR: %v", msg.err), true)

	case writeDoneMsg:
		m.addLogEntry(fmt.Sprintf("Wrote %s", flameconnect.FormatParameterID(msg.kind)), false)
		return m, m.refresh()
	}

	// Update child components
	var cmd tea.Cmd
	if m.focusedField == focusTempInput {
		m.tempInput, cmd = m.tempInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.focusedField == focusFireList {
		m.fireList, cmd = m.fireList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *controlModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		return m.cycleFocus(1), nil

	case "shift+tab":
		return m.cycleFocus(-1), nil

	case "r":
		if m.focusedField != focusTempInput {
			return m, m.refresh()
		}

	case "+", "=":
		if m.focusedField != focusTempInput {
			return m.adjustSpeed(1)
		}

	case "-", "_":
		if m.focusedField != focusTempInput {
			return m.adjustSpeed(-1)
		}

	case "b":
		if m.focusedField != focusTempInput {
			return m.cycleBrightness()
		}

	case "enter":
		return m.handleEnter()

	case "up", "k", "down", "j":
		if m.focusedField == focusFireList {
			before := m.fireList.Index()
			m.fireList, _ = m.fireList.Update(msg)
			if m.fireList.Index() != before {
				// Selection changed: drop stale state and poll the new fire
				m.params = make(map[flameconnect.ParameterID]flameconnect.Parameter)
				return m, m.refresh()
			}
			return m, nil
		}
	}

	// Pass through to focused component
	if m.focusedField == focusTempInput {
		var cmd tea.Cmd
		m.tempInput, cmd = m.tempInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *controlModel) cycleFocus(delta int) *controlModel {
	maxFocus := focusModeButton
	m.focusedField = (m.focusedField + delta + maxFocus + 1) % (maxFocus + 1)

	if m.focusedField == focusTempInput {
		m.tempInput.Focus()
	} else {
		m.tempInput.Blur()
	}

	return m
}

func (m *controlModel) handleEnter() (tea.Model, tea.Cmd) {
	fireID := m.selectedFireID()
	if fireID == "" {
		return m, nil
	}

	switch m.focusedField {
	case focusTempInput:
		return m.submitTemperature(fireID)

	case focusModeButton:
		return m.cycleMode(fireID)
	}

	return m, nil
}

// submitTemperature writes the entered target temperature, preserving the
// current operating mode.
func (m *controlModel) submitTemperature(fireID string) (tea.Model, tea.Cmd) {
	val := m.tempInput.Value()
	if val == "" {
		return m, nil
	}

	temp, err := strconv.ParseFloat(val, 64)
	if err != nil {
		m.addLogEntry(fmt.Sprintf("Invalid temperature: %s", val), true)
		return m, nil
	}
	if temp < 0 || temp > maxTargetTempInput {
		m.addLogEntry(fmt.Sprintf("Temperature must be between 0 and %.0f", maxTargetTempInput), true)
		return m, nil
	}

	mode := flameconnect.Mode{Mode: flameconnect.ModeManual}
	if current, ok := m.params[flameconnect.ParamMode]; ok {
		mode = current.(flameconnect.Mode)
	}
	mode.Temperature = temp

	m.addLogEntry(fmt.Sprintf("Setting target temperature to %.1f", temp), false)
	return m, writeParamCmd(m.client, fireID, mode)
}

// adjustSpeed bumps the flame speed by delta within the 1-5 range, writing
// the whole FlameEffect record back so colors and flags are preserved.
func (m *controlModel) adjustSpeed(delta int) (tea.Model, tea.Cmd) {
	fireID := m.selectedFireID()
	current, ok := m.params[flameconnect.ParamFlameEffect]
	if fireID == "" || !ok {
		return m, nil
	}

	fe := current.(flameconnect.FlameEffect)
	speed := int(fe.Speed) + delta
	if speed < flameconnect.MinFlameSpeed || speed > flameconnect.MaxFlameSpeed {
		return m, nil
	}
	fe.Speed = uint8(speed)

	m.addLogEntry(fmt.Sprintf("Setting flame speed to %d", speed), false)
	return m, writeParamCmd(m.client, fireID, fe)
}

// cycleBrightness advances the flame brightness through its three levels.
func (m *controlModel) cycleBrightness() (tea.Model, tea.Cmd) {
	fireID := m.selectedFireID()
	current, ok := m.params[flameconnect.ParamFlameEffect]
	if fireID == "" || !ok {
		return m, nil
	}

	fe := current.(flameconnect.FlameEffect)
	fe.Brightness = (fe.Brightness + 1) % 3

	m.addLogEntry(fmt.Sprintf("Setting brightness to %s", flameconnect.FormatBrightness(fe.Brightness)), false)
	return m, writeParamCmd(m.client, fireID, fe)
}

// cycleMode advances the operating mode off -> manual -> thermostat -> off.
func (m *controlModel) cycleMode(fireID string) (tea.Model, tea.Cmd) {
	mode := flameconnect.Mode{}
	if current, ok := m.params[flameconnect.ParamMode]; ok {
		mode = current.(flameconnect.Mode)
	}

	var next string
	switch mode.Mode {
	case flameconnect.ModeOff:
		mode.Mode = flameconnect.ModeManual
		next = "manual"
	case flameconnect.ModeManual:
		mode.Mode = flameconnect.ModeThermostat
		next = "thermostat"
	default:
		mode.Mode = flameconnect.ModeOff
		next = "off"
	}

	m.addLogEntry(fmt.Sprintf("Setting mode to %s", next), false)
	return m, writeParamCmd(m.client, fireID, mode)
}

func (m controlModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var s strings.Builder

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	focusedBoxStyle := boxStyle.
		BorderForeground(lipgloss.Color("12"))

	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("12")).
		Padding(0, 2)

	focusedButtonStyle := buttonStyle.
		Background(lipgloss.Color("10"))

	// Header
	s.WriteString(titleStyle.Render("FLAMECONNECT"))
	s.WriteString(" ")
	status := "idle"
	if m.fetching {
		status = "refreshing..."
	} else if !m.lastUpdate.IsZero() {
		status = fmt.Sprintf("updated %s", m.lastUpdate.Format("15:04:05"))
	}
	s.WriteString(headerStyle.Render(fmt.Sprintf("| %s | q=quit Tab=switch r=refresh +/-=speed b=brightness", status)))
	s.WriteString("\n\n")

	// Layout: left panel (fires) | right panel (control)
	leftWidth := 30
	rightWidth := m.width - leftWidth - 6
	if rightWidth < 20 {
		rightWidth = 20
	}

	listStyle := boxStyle.Width(leftWidth)
	if m.focusedField == focusFireList {
		listStyle = focusedBoxStyle.Width(leftWidth)
	}
	firePanel := listStyle.Render(m.fireList.View())

	controlContent := m.renderControlPanel(labelStyle, valueStyle, headerStyle, buttonStyle, focusedButtonStyle)
	controlPanel := boxStyle.Width(rightWidth).Render(controlContent)

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, firePanel, " ", controlPanel))
	s.WriteString("\n\n")

	// Parameter readout for the selected fire
	s.WriteString(m.renderParameters(labelStyle, valueStyle, warningStyle, boxStyle))
	s.WriteString("\n\n")

	// Event log
	s.WriteString(m.renderEventLog(labelStyle, warningStyle, boxStyle))

	return s.String()
}

//////////////////////////////////////////////////////////////
// View Helpers
//////////////////////////////////////////////////////////////

func modeButtonLabel(mode flameconnect.FireMode) string {
	switch mode {
	case flameconnect.ModeOff:
		return "[ Mode: Off ]"
	case flameconnect.ModeManual:
		return "[ Mode: Manual ]"
	case flameconnect.ModeThermostat:
		return "[ Mode: Thermostat ]"
	}
	return "[ Mode: ? ]"
}

func (m controlModel) renderControlPanel(labelStyle, valueStyle, headerStyle, buttonStyle, focusedButtonStyle lipgloss.Style) string {
	var s strings.Builder

	fireID := m.selectedFireID()
	if fireID == "" {
		s.WriteString(headerStyle.Render("No fire selected"))
		return s.String()
	}

	s.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("Selected:"), valueStyle.Render(fireID)))

	mode := flameconnect.Mode{}
	if current, ok := m.params[flameconnect.ParamMode]; ok {
		mode = current.(flameconnect.Mode)
	}

	// Temperature input
	s.WriteString(labelStyle.Render("Target temp: "))
	if m.focusedField == focusTempInput {
		s.WriteString(m.tempInput.View())
	} else {
		val := m.tempInput.Value()
		if val == "" {
			val = fmt.Sprintf("%.1f", mode.Temperature)
		}
		s.WriteString(fmt.Sprintf("[%s]", val))
	}
	s.WriteString("\n\n")

	// Mode cycle button
	btnText := modeButtonLabel(mode.Mode)
	if m.focusedField == focusModeButton {
		s.WriteString(focusedButtonStyle.Render(btnText))
	} else {
		s.WriteString(buttonStyle.Render(btnText))
	}

	if current, ok := m.params[flameconnect.ParamFlameEffect]; ok {
		fe := current.(flameconnect.FlameEffect)
		s.WriteString(fmt.Sprintf("\n\n%s speed %d, brightness %s",
			labelStyle.Render("Flame:"), fe.Speed, flameconnect.FormatBrightness(fe.Brightness)))
	}

	return s.String()
}

func (m controlModel) renderParameters(labelStyle, valueStyle, warningStyle, boxStyle lipgloss.Style) string {
	var s strings.Builder
	s.WriteString(labelStyle.Render("PARAMETERS"))
	s.WriteString("\n")

	if len(m.params) == 0 {
		s.WriteString("  (no data yet)")
		return boxStyle.Width(m.width - 4).Render(s.String())
	}

	ids := make([]flameconnect.ParameterID, 0, len(m.params))
	for id := range m.params {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		p := m.params[id]
		s.WriteString(flameconnect.FormatParameter(p))
		for _, finding := range flameconnect.ValidateParameter(p) {
			s.WriteString(warningStyle.Render(fmt.Sprintf("  WARNING: %s", finding.Message)))
			s.WriteString("\n")
		}
	}

	return boxStyle.Width(m.width - 4).Render(strings.TrimRight(s.String(), "\n"))
}

func (m controlModel) renderEventLog(labelStyle, warningStyle, boxStyle lipgloss.Style) string {
	var s strings.Builder
	s.WriteString(labelStyle.Render("EVENTS"))
	s.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	logHeight := 8
	if len(m.eventLog) < logHeight {
		logHeight = len(m.eventLog)
	}

	startIdx := len(m.eventLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.eventLog) == 0 {
		s.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.eventLog); i++ {
			entry := m.eventLog[i]
			timestamp := entry.timestamp.Format("15:04:05.000")
			icon := "i"
			style := warningStyle
			if entry.isError {
				icon = "x"
				style = errorStyle
			}
			s.WriteString(fmt.Sprintf("%s %s %s\n",
				headerStyle.Render(timestamp),
				style.Render(icon),
				entry.message))
		}
	}

	return boxStyle.Width(m.width - 4).Render(strings.TrimRight(s.String(), "\n"))
}

//////////////////////////////////////////////////////////////
// Helpers
//////////////////////////////////////////////////////////////

func (m *controlModel) refresh() tea.Cmd {
	fireID := m.selectedFireID()
	if fireID == "" {
		return nil
	}
	m.fetching = true
	return fetchParamsCmd(m.client, fireID)
}

func (m *controlModel) applyParams(params []flameconnect.Parameter) {
	for _, p := range params {
		old, seen := m.params[p.ID()]
		m.params[p.ID()] = p
		if seen && old != p {
			m.addLogEntry(fmt.Sprintf("%s changed", flameconnect.FormatParameterID(p.ID())), false)
		}
	}
}

func (m controlModel) selectedFireID() string {
	if len(m.fires) == 0 {
		return ""
	}
	idx := m.fireList.Index()
	if idx < 0 || idx >= len(m.fires) {
		return ""
	}
	return m.fires[idx].FireID
}

func (m *controlModel) addLogEntry(message string, isError bool) {
	entry := eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.eventLog = append(m.eventLog, entry)

	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
}

func (m *controlModel) updateListSize() {
	listHeight := m.height / 3
	if listHeight < 5 {
		listHeight = 5
	}
	m.fireList.SetSize(28, listHeight)
}
