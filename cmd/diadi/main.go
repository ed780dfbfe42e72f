package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/client"
	"github.com/alfredjeanlab/diadi/internal/config"
	"github.com/alfredjeanlab/diadi/internal/model"
	"github.com/alfredjeanlab/diadi/internal/ui"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool
	variant    string
	serverURL  string

	cfg *config.Config
)

func defaultConfigPath() string {
	if p := os.Getenv("DIADI_CONFIG"); p != "" {
		return p
	}
	p, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	return p
}

var rootCmd = &cobra.Command{
	Use:           "diadi <command>",
	Short:         "Inspect facilitated sessions and the action each one offers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if variant != "" {
			v := model.LabelVariant(variant)
			if !v.IsValid() {
				return fmt.Errorf("invalid --variant %q (must be prominent or compact)", variant)
			}
			cfg.Display.Variant = v
		}
		ui.Configure(colorOverride(cmd.Flags().Changed("no-color"), noColor))
		return nil
	},
}

// colorOverride turns an explicit --no-color into a forced color choice.
// --no-color=false forces color on even without a TTY; nil leaves detection on.
func colorOverride(set, off bool) *bool {
	if !set {
		return nil
	}
	use := !off
	return &use
}

// boardOptions returns board options derived from the loaded config.
func boardOptions() board.Options {
	return board.Options{
		Routes:  cfg.Routes,
		Variant: cfg.Display.Variant,
	}
}

// remoteClient returns a client for the configured board server, or nil when
// commands should derive locally.
func remoteClient() client.BoardClient {
	if serverURL == "" {
		return nil
	}
	return client.NewHTTPClient(serverURL, cfg.Server.AuthToken)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", os.Getenv("DIADI_SERVER"), "board server URL; derive remotely instead of locally (env: DIADI_SERVER)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "label variant: prominent or compact (overrides config)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "sessions", Title: "Sessions:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Sessions
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(newCmd)

	// System
	rootCmd.AddCommand(statusesCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
