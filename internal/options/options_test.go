package options

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

func validConfig() Config {
	return Config{
		Theme:             ThemeLight,
		Backdrop:          BackdropDefault,
		Gradient:          GradientAnimated,
		AllowClickOutside: true,
		PrimaryColor:      "#6366f1",
		Radius:            0.5,
	}
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme("midnight")
	require.NoError(t, err)
	require.Equal(t, ThemeMidnight, theme)

	backdrop, err := ParseBackdrop("blur")
	require.NoError(t, err)
	require.Equal(t, BackdropBlur, backdrop)

	gradient, err := ParseGradient("none")
	require.NoError(t, err)
	require.Equal(t, GradientNone, gradient)
}

func TestParseRejectsUnknownTags(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme("Dark")
	require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)

	_, err = ParseBackdrop("fog")
	var optErr *stagehanderrors.UnrecognizedOptionError
	require.ErrorAs(t, err, &optErr)
	require.Equal(t, "backdrop", optErr.Option)
	require.Equal(t, []string{"default", "blur", "transparent"}, optErr.Allowed)

	_, err = ParseGradient("")
	require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)
}

func TestEnumListsAreCopies(t *testing.T) {
	t.Parallel()

	list := Themes()
	list[0] = "changed"
	require.Equal(t, ThemeLight, Themes()[0])
	require.Len(t, Backdrops(), 3)
	require.Len(t, Gradients(), 3)
}

func TestUnmarshalTextRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	var cfg Config
	err := json.Unmarshal([]byte(`{"theme":"neon"}`), &cfg)
	require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)

	require.NoError(t, json.Unmarshal([]byte(`{"theme":"ocean","backdrop":"transparent","gradient":"static"}`), &cfg))
	require.Equal(t, ThemeOcean, cfg.Theme)
	require.Equal(t, BackdropTransparent, cfg.Backdrop)
	require.Equal(t, GradientStatic, cfg.Gradient)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(c *Config)
		assert func(t *testing.T, err error)
	}{
		{
			name:   "baseline is valid",
			mutate: func(c *Config) {},
			assert: func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			name:   "uppercase color without hash is valid",
			mutate: func(c *Config) { c.PrimaryColor = "FF0000" },
			assert: func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			name:   "unknown theme",
			mutate: func(c *Config) { c.Theme = "neon" },
			assert: func(t *testing.T, err error) {
				var optErr *stagehanderrors.UnrecognizedOptionError
				require.ErrorAs(t, err, &optErr)
				require.Equal(t, "theme", optErr.Option)
				require.Equal(t, "neon", optErr.Value)
			},
		},
		{
			name:   "unknown gradient",
			mutate: func(c *Config) { c.Gradient = "pulse" },
			assert: func(t *testing.T, err error) {
				require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)
			},
		},
		{
			name:   "short color",
			mutate: func(c *Config) { c.PrimaryColor = "#fff" },
			assert: func(t *testing.T, err error) {
				require.ErrorIs(t, err, stagehanderrors.ErrInvalidColorFormat)
			},
		},
		{
			name:   "radius above range",
			mutate: func(c *Config) { c.Radius = 2.5 },
			assert: func(t *testing.T, err error) {
				var validationErr *stagehanderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "radius", validationErr.Field)
			},
		},
		{
			name:   "radius off step",
			mutate: func(c *Config) { c.Radius = 0.55 },
			assert: func(t *testing.T, err error) {
				var validationErr *stagehanderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "multiple of 0.1")
			},
		},
		{
			name:   "radius bounds are inclusive",
			mutate: func(c *Config) { c.Radius = 2 },
			assert: func(t *testing.T, err error) { require.NoError(t, err) },
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)
			tc.assert(t, cfg.Validate())
		})
	}
}

func TestRadiusHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.7, SnapRadius(0.68))
	require.Equal(t, 2.0, SnapRadius(3))
	require.Equal(t, 0.0, SnapRadius(-1))

	require.Equal(t, "0.5", FormatRadius(0.5))
	require.Equal(t, "1", FormatRadius(1))
	require.Equal(t, "0", FormatRadius(0))
	require.Equal(t, "1.2", FormatRadius(SnapRadius(1.2000000001)))
}

func TestLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Light (Default)", ThemeLight.Label())
	require.Equal(t, "Dark (Default)", BackdropDefault.Label())
	require.Equal(t, "Animated (Default)", GradientAnimated.Label())
	require.False(t, Theme("neon").Valid())
}
