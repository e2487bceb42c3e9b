package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg options.Config, err error)
	}{
		{
			name: "yaml with every field",
			file: "modal.yaml",
			contents: `theme: dark
backdrop: blur
gradient: static
allowClickOutside: false
primaryColor: "#FF0000"
radius: 1.2
`,
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, options.ThemeDark, cfg.Theme)
				require.Equal(t, options.BackdropBlur, cfg.Backdrop)
				require.Equal(t, options.GradientStatic, cfg.Gradient)
				require.False(t, cfg.AllowClickOutside)
				require.Equal(t, "#FF0000", cfg.PrimaryColor)
				require.Equal(t, 1.2, cfg.Radius)
			},
		},
		{
			name:     "missing keys fall back to the theme defaults",
			file:     "modal.yml",
			contents: "theme: ocean\n",
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, defaults.ForTheme(options.ThemeOcean), cfg)
			},
		},
		{
			name:     "empty yaml is the baseline",
			file:     "empty.yaml",
			contents: "",
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, defaults.Baseline(), cfg)
			},
		},
		{
			name: "toml",
			file: "modal.toml",
			contents: `theme = "midnight"
gradient = "none"
radius = 0.8
`,
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, options.ThemeMidnight, cfg.Theme)
				require.Equal(t, options.GradientNone, cfg.Gradient)
				require.Equal(t, "#a855f7", cfg.PrimaryColor)
				require.Equal(t, 0.8, cfg.Radius)
			},
		},
		{
			name:     "json",
			file:     "modal.json",
			contents: `{"backdrop":"transparent","allowClickOutside":false}`,
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.NoError(t, err)
				require.Equal(t, options.BackdropTransparent, cfg.Backdrop)
				require.False(t, cfg.AllowClickOutside)
				require.Equal(t, options.ThemeLight, cfg.Theme)
			},
		},
		{
			name:     "unknown yaml key is a parse error with a line",
			file:     "modal.yaml",
			contents: "theme: dark\ncolour: red\n",
			assert: func(t *testing.T, cfg options.Config, err error) {
				var parseErr *stagehanderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown toml key",
			file:     "modal.toml",
			contents: "shadow = true\n",
			assert: func(t *testing.T, cfg options.Config, err error) {
				var parseErr *stagehanderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "shadow")
			},
		},
		{
			name:     "unknown json key",
			file:     "modal.json",
			contents: `{"shadow":true}`,
			assert: func(t *testing.T, cfg options.Config, err error) {
				var parseErr *stagehanderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unrecognized theme is reported while decoding",
			file:     "modal.yaml",
			contents: "theme: neon\n",
			assert: func(t *testing.T, cfg options.Config, err error) {
				var parseErr *stagehanderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, err.Error(), "unrecognized theme")
			},
		},
		{
			name:     "malformed color fails validation",
			file:     "modal.yaml",
			contents: "primaryColor: \"#abc\"\n",
			assert: func(t *testing.T, cfg options.Config, err error) {
				require.ErrorIs(t, err, stagehanderrors.ErrInvalidColorFormat)
			},
		},
		{
			name:     "unsupported extension",
			file:     "modal.ini",
			contents: "theme=dark",
			assert: func(t *testing.T, cfg options.Config, err error) {
				var parseErr *stagehanderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(writeFile(t, tc.file, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *stagehanderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := defaults.ForTheme(options.ThemeSunset)
	cfg.Radius = 1.5

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, cfg), format)

		decoded, err := Decode("buffer", format, buf.Bytes())
		require.NoError(t, err, format)
		require.Equal(t, cfg, decoded, format)
	}
}

func TestEncodeYAMLUsesConfigKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, defaults.Baseline()))
	require.Contains(t, buf.String(), "theme: light\n")
	require.Contains(t, buf.String(), "allowClickOutside: true\n")
	require.Contains(t, buf.String(), "radius: 0.5\n")
}
