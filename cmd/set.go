// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deviantintegral/flameconnect-sub000/internal/cloud"
	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Write fireplace parameters",
}

var setTempCmd = &cobra.Command{
	Use:   "temp <degrees>",
	Short: "Set the target temperature (e.g. 22.5)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetTemp,
}

var setModeCmd = &cobra.Command{
	Use:   "mode off|manual|thermostat",
	Short: "Set the operating mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetMode,
}

var setUnitCmd = &cobra.Command{
	Use:   "unit c|f",
	Short: "Set the temperature display unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetUnit,
}

var setTimerCmd = &cobra.Command{
	Use:   "timer <minutes>|off",
	Short: "Set the sleep timer",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetTimer,
}

var (
	soundVolume int
	soundFile   int
)

var setSoundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Set speaker volume and sound file",
	RunE:  runSetSound,
}

var (
	flameEffect     string
	flameSpeed      int
	flameBrightness string
	flameTheme      string
)

var setFlameCmd = &cobra.Command{
	Use:   "flame",
	Short: "Adjust the flame effect",
	Long: `Adjust the flame effect. Only the flags you pass are changed; the rest of
the record is read from the fire first and preserved.`,
	RunE: runSetFlame,
}

var (
	logEffectFlag string
	logPattern    int
)

var setLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Adjust the log-bed effect",
	RunE:  runSetLog,
}

func init() {
	setSoundCmd.Flags().IntVar(&soundVolume, "volume", -1, "Volume (0-100)")
	setSoundCmd.Flags().IntVar(&soundFile, "file", -1, "Sound file index")

	setFlameCmd.Flags().StringVar(&flameEffect, "effect", "", "Effect state (on, off)")
	setFlameCmd.Flags().IntVar(&flameSpeed, "speed", 0, "Flame speed (1-5)")
	setFlameCmd.Flags().StringVar(&flameBrightness, "brightness", "", "Brightness (low, medium, high)")
	setFlameCmd.Flags().StringVar(&flameTheme, "theme", "", "Theme (custom, amber, twilight, forest, ocean)")

	setLogCmd.Flags().StringVar(&logEffectFlag, "effect", "", "Effect state (on, off)")
	setLogCmd.Flags().IntVar(&logPattern, "pattern", -1, "Pattern index")

	setCmd.AddCommand(setTempCmd, setModeCmd, setUnitCmd, setTimerCmd, setSoundCmd, setFlameCmd, setLogCmd)
	rootCmd.AddCommand(setCmd)
}

// openFire builds a client and resolves the target fire for a write command.
func openFire(ctx context.Context) (*cloud.Client, string, error) {
	client, err := newCloudClient()
	if err != nil {
		return nil, "", err
	}
	fireID, err := resolveFireID(ctx, client)
	if err != nil {
		return nil, "", err
	}
	return client, fireID, nil
}

func writeOne(ctx context.Context, client *cloud.Client, fireID string, p flameconnect.Parameter) error {
	if err := client.WriteParameters(ctx, fireID, []flameconnect.Parameter{p}); err != nil {
		return err
	}
	fmt.Print(flameconnect.FormatParameter(p))
	return nil
}

func runSetTemp(cmd *cobra.Command, args []string) error {
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid temperature %q", args[0])
	}
	if temp < 0 || temp > 255.9 {
		return fmt.Errorf("temperature %.1f out of encodable range [0, 255.9]", temp)
	}

	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}

	// Preserve the current mode byte
	mode := flameconnect.Mode{Mode: flameconnect.ModeManual}
	if current, err := client.ReadParameter(ctx, fireID, flameconnect.ParamMode); err != nil {
		return err
	} else if current != nil {
		mode = current.(flameconnect.Mode)
	}

	mode.Temperature = temp
	return writeOne(ctx, client, fireID, mode)
}

func runSetMode(cmd *cobra.Command, args []string) error {
	var fireMode flameconnect.FireMode
	switch strings.ToLower(args[0]) {
	case "off":
		fireMode = flameconnect.ModeOff
	case "manual":
		fireMode = flameconnect.ModeManual
	case "thermostat":
		fireMode = flameconnect.ModeThermostat
	default:
		return fmt.Errorf("invalid mode %q (off, manual, thermostat)", args[0])
	}

	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}

	// Preserve the current target temperature
	mode := flameconnect.Mode{}
	if current, err := client.ReadParameter(ctx, fireID, flameconnect.ParamMode); err != nil {
		return err
	} else if current != nil {
		mode = current.(flameconnect.Mode)
	}

	mode.Mode = fireMode
	return writeOne(ctx, client, fireID, mode)
}

func runSetUnit(cmd *cobra.Command, args []string) error {
	var unit flameconnect.Unit
	switch strings.ToLower(args[0]) {
	case "c", "celsius":
		unit = flameconnect.UnitCelsius
	case "f", "fahrenheit":
		unit = flameconnect.UnitFahrenheit
	default:
		return fmt.Errorf("invalid unit %q (c, f)", args[0])
	}

	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}
	return writeOne(ctx, client, fireID, flameconnect.TemperatureUnit{Unit: unit})
}

func runSetTimer(cmd *cobra.Command, args []string) error {
	timer := flameconnect.Timer{}
	if strings.ToLower(args[0]) != "off" {
		minutes, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid timer duration %q (minutes or \"off\")", args[0])
		}
		timer = flameconnect.Timer{Status: flameconnect.TimerOn, Duration: uint16(minutes)}
	}

	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}
	return writeOne(ctx, client, fireID, timer)
}

func runSetSound(cmd *cobra.Command, args []string) error {
	if soundVolume < 0 && soundFile < 0 {
		return fmt.Errorf("nothing to change (pass --volume and/or --file)")
	}
	if soundVolume > flameconnect.MaxVolume {
		return fmt.Errorf("volume %d out of range (0-%d)", soundVolume, flameconnect.MaxVolume)
	}

	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}

	sound := flameconnect.Sound{}
	if current, err := client.ReadParameter(ctx, fireID, flameconnect.ParamSound); err != nil {
		return err
	} else if current != nil {
		sound = current.(flameconnect.Sound)
	}

	if soundVolume >= 0 {
		sound.Volume = uint8(soundVolume)
	}
	if soundFile >= 0 {
		sound.File = uint8(soundFile)
	}
	return writeOne(ctx, client, fireID, sound)
}

func runSetFlame(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}

	// Read-modify-write: the flame record carries colors and sensor flags
	// that must survive a partial update.
	fe := flameconnect.FlameEffect{Speed: flameconnect.MinFlameSpeed}
	if current, err := client.ReadParameter(ctx, fireID, flameconnect.ParamFlameEffect); err != nil {
		return err
	} else if current != nil {
		fe = current.(flameconnect.FlameEffect)
	}

	if flameEffect != "" {
		effect, err := parseEffect(flameEffect)
		if err != nil {
			return err
		}
		fe.Effect = effect
	}
	if flameSpeed != 0 {
		if flameSpeed < flameconnect.MinFlameSpeed || flameSpeed > flameconnect.MaxFlameSpeed {
			return fmt.Errorf("speed %d out of range (%d-%d)", flameSpeed, flameconnect.MinFlameSpeed, flameconnect.MaxFlameSpeed)
		}
		fe.Speed = uint8(flameSpeed)
	}
	if flameBrightness != "" {
		switch strings.ToLower(flameBrightness) {
		case "low":
			fe.Brightness = flameconnect.BrightnessLow
		case "medium":
			fe.Brightness = flameconnect.BrightnessMedium
		case "high":
			fe.Brightness = flameconnect.BrightnessHigh
		default:
			return fmt.Errorf("invalid brightness %q (low, medium, high)", flameBrightness)
		}
	}
	if flameTheme != "" {
		switch strings.ToLower(flameTheme) {
		case "custom":
			fe.Theme = flameconnect.ThemeCustom
		case "amber":
			fe.Theme = flameconnect.ThemeAmber
		case "twilight":
			fe.Theme = flameconnect.ThemeTwilight
		case "forest":
			fe.Theme = flameconnect.ThemeForest
		case "ocean":
			fe.Theme = flameconnect.ThemeOcean
		default:
			return fmt.Errorf("invalid theme %q", flameTheme)
		}
	}

	return writeOne(ctx, client, fireID, fe)
}

func runSetLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, fireID, err := openFire(ctx)
	if err != nil {
		return err
	}

	le := flameconnect.LogEffect{}
	if current, err := client.ReadParameter(ctx, fireID, flameconnect.ParamLogEffect); err != nil {
		return err
	} else if current != nil {
		le = current.(flameconnect.LogEffect)
	}

	if logEffectFlag != "" {
		effect, err := parseEffect(logEffectFlag)
		if err != nil {
			return err
		}
		le.Effect = effect
	}
	if logPattern >= 0 {
		if logPattern > 255 {
			return fmt.Errorf("pattern %d out of range (0-255)", logPattern)
		}
		le.Pattern = uint8(logPattern)
	}

	return writeOne(ctx, client, fireID, le)
}

func parseEffect(s string) (flameconnect.Effect, error) {
	switch strings.ToLower(s) {
	case "on":
		return flameconnect.EffectOn, nil
	case "off":
		return flameconnect.EffectOff, nil
	default:
		return 0, fmt.Errorf("invalid effect %q (on, off)", s)
	}
}
