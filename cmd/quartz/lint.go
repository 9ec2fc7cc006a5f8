// Lint command validates every device clock in machine definition files.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

var lintCmd = &cobra.Command{
	Use:   "lint <machine.yaml>...",
	Short: "Validate all device clocks in machine definition files",
	Long: `Lint reads machine definition files and checks every device clock
against the known crystal list. All mismatches are reported, each with the
machine/device that declared the clock; the exit status is nonzero if any
clock failed.

A machine definition looks like:

  machine: galaga
  devices:
    - name: maincpu
      clock: 18.432MHz
    - name: namco
      clock: 96000

Example:
  quartz lint machines/galaga.yaml machines/pacman.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

// machineDef mirrors the YAML shape of a machine definition file.
type machineDef struct {
	Machine string      `mapstructure:"machine"`
	Devices []deviceDef `mapstructure:"devices"`
}

// deviceDef is one device clock declaration. Clock accepts a YAML number
// (Hz) or a unit-suffixed string.
type deviceDef struct {
	Name  string `mapstructure:"name"`
	Clock any    `mapstructure:"clock"`
}

func runLint(cmd *cobra.Command, args []string) error {
	v := xtal.New()
	failures := 0
	checked := 0

	for _, path := range args {
		def, err := loadMachineDef(path)
		if err != nil {
			return err
		}

		for _, dev := range def.Devices {
			hz, err := deviceClockHz(dev)
			if err != nil {
				return fmt.Errorf("%s: device %q: %w", path, dev.Name, err)
			}
			checked++
			context := fmt.Sprintf("%s/%s", def.Machine, dev.Name)
			if !v.Check(hz) {
				failures++
				log.Error().Str("context", context).Msg(v.FailureMessage(hz, context))
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d device clocks are not known crystals", failures, checked)
	}
	log.Info().Int("checked", checked).Msg("all device clocks are known crystals")
	return nil
}

// loadMachineDef reads one machine definition file with Viper.
func loadMachineDef(path string) (*machineDef, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read machine definition %s: %w", path, err)
	}

	var def machineDef
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("parse machine definition %s: %w", path, err)
	}
	if def.Machine == "" {
		return nil, fmt.Errorf("machine definition %s: missing machine name", path)
	}
	if len(def.Devices) == 0 {
		return nil, fmt.Errorf("machine definition %s: no devices", path)
	}
	return &def, nil
}

// deviceClockHz converts a device clock declaration to Hz.
func deviceClockHz(dev deviceDef) (float64, error) {
	switch clock := dev.Clock.(type) {
	case string:
		return xtal.ParseFrequency(clock)
	case float64:
		return clock, nil
	case int:
		return float64(clock), nil
	case int64:
		return float64(clock), nil
	case uint64:
		return float64(clock), nil
	case nil:
		return 0, fmt.Errorf("missing clock")
	default:
		return 0, fmt.Errorf("unsupported clock type %T", dev.Clock)
	}
}
