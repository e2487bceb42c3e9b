package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/config"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
)

// configFlags are shared by every command that renders artifacts.
type configFlags struct {
	configPath        string
	theme             string
	backdrop          string
	gradient          string
	allowClickOutside bool
	primaryColor      string
	radius            float64
	baselineTheme     string
}

func bindConfigFlags(cmd *cobra.Command, flags *configFlags) {
	base := defaults.Baseline()

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML, TOML or JSON configuration file")
	cmd.Flags().StringVar(&flags.theme, "theme", string(base.Theme), "Theme preset ("+strings.Join(themeNames(), ", ")+")")
	cmd.Flags().StringVar(&flags.backdrop, "backdrop", string(base.Backdrop), "Backdrop style (default, blur, transparent)")
	cmd.Flags().StringVar(&flags.gradient, "gradient", string(base.Gradient), "Background gradient (animated, static, none)")
	cmd.Flags().BoolVar(&flags.allowClickOutside, "allow-click-outside", base.AllowClickOutside, "Close the modal when clicking outside it")
	cmd.Flags().StringVar(&flags.primaryColor, "primary-color", "", "Brand color as 6-digit hex (defaults to the theme's color)")
	cmd.Flags().Float64Var(&flags.radius, "radius", base.Radius, "Border radius in rem (0 to 2, steps of 0.1)")
	cmd.Flags().StringVar(&flags.baselineTheme, "baseline-theme", "", "Theme whose defaults customisations are measured against (defaults to --theme)")
}

// resolveConfig loads the optional file and overlays the flags the user set
// explicitly. It returns the configuration and the baseline theme.
func resolveConfig(cmd *cobra.Command, flags *configFlags) (options.Config, options.Theme, error) {
	cfg := defaults.Baseline()
	if strings.TrimSpace(flags.configPath) != "" {
		if err := checkConfigPath(flags.configPath); err != nil {
			return options.Config{}, "", newCommandError("load configuration", fmt.Sprintf("resolving %q", flags.configPath), err, "Check that the file exists and you have permission to read it.")
		}
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return options.Config{}, "", newCommandError("load configuration", fmt.Sprintf("reading %q", flags.configPath), err, "Fix the configuration errors shown above and try again.")
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed

	if changed("theme") {
		theme, err := options.ParseTheme(flags.theme)
		if err != nil {
			return options.Config{}, "", flagError("theme", err)
		}
		if !changed("primary-color") && defaults.IsDefault(defaults.FieldPrimaryColor, cfg, cfg.Theme) {
			cfg.PrimaryColor = defaults.PrimaryColorFor(theme)
		}
		cfg.Theme = theme
	}
	if changed("backdrop") {
		backdrop, err := options.ParseBackdrop(flags.backdrop)
		if err != nil {
			return options.Config{}, "", flagError("backdrop", err)
		}
		cfg.Backdrop = backdrop
	}
	if changed("gradient") {
		gradient, err := options.ParseGradient(flags.gradient)
		if err != nil {
			return options.Config{}, "", flagError("gradient", err)
		}
		cfg.Gradient = gradient
	}
	if changed("allow-click-outside") {
		cfg.AllowClickOutside = flags.allowClickOutside
	}
	if changed("primary-color") {
		cfg.PrimaryColor = flags.primaryColor
	}
	if changed("radius") {
		cfg.Radius = flags.radius
	}

	if err := cfg.Validate(); err != nil {
		return options.Config{}, "", newCommandError("validate configuration", "checking modal settings", err, "Run 'stagehand defaults' to see accepted values.")
	}

	baseline := cfg.Theme
	if changed("baseline-theme") {
		theme, err := options.ParseTheme(flags.baselineTheme)
		if err != nil {
			return options.Config{}, "", flagError("baseline-theme", err)
		}
		baseline = theme
	}

	return cfg, baseline, nil
}

func flagError(name string, err error) error {
	return newCommandError("read flags", fmt.Sprintf("parsing --%s", name), err, "Pick one of the allowed values listed in the error.")
}

func checkConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", abs)
	}
	return nil
}

func themeNames() []string {
	themes := options.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}
	return names
}
