package projector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

// configForMask customises the fields whose bit is set, in canonical field order.
func configForMask(mask int) options.Config {
	cfg := defaults.Baseline()
	if mask&(1<<defaults.FieldTheme) != 0 {
		cfg.Theme = options.ThemeDark
	}
	if mask&(1<<defaults.FieldBackdrop) != 0 {
		cfg.Backdrop = options.BackdropBlur
	}
	if mask&(1<<defaults.FieldGradient) != 0 {
		cfg.Gradient = options.GradientStatic
	}
	if mask&(1<<defaults.FieldAllowClickOutside) != 0 {
		cfg.AllowClickOutside = false
	}
	cfg.PrimaryColor = defaults.PrimaryColorFor(cfg.Theme)
	if mask&(1<<defaults.FieldPrimaryColor) != 0 {
		cfg.PrimaryColor = "#ff0000"
	}
	if mask&(1<<defaults.FieldRadius) != 0 {
		cfg.Radius = 1.2
	}
	return cfg
}

func TestProjectBaselineIsEmpty(t *testing.T) {
	t.Parallel()

	diff, err := Project(defaults.Baseline(), options.ThemeLight)
	require.NoError(t, err)
	require.True(t, diff.Empty())
	require.Equal(t, 0, diff.Len())
	require.Empty(t, diff.Entries())
}

func TestProjectThemeDefaultsOnlyReportTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range options.Themes() {
		diff, err := Project(defaults.ForTheme(theme), theme)
		require.NoError(t, err)

		if theme == options.ThemeLight {
			require.True(t, diff.Empty())
			continue
		}
		require.Equal(t, []defaults.Field{defaults.FieldTheme}, diff.Fields(), theme)
		entry, _ := diff.Get(defaults.FieldTheme)
		require.Equal(t, theme.String(), entry.Value)
	}
}

func TestProjectMinimalityForEveryCombination(t *testing.T) {
	t.Parallel()

	for mask := 0; mask < 1<<len(defaults.Fields()); mask++ {
		cfg := configForMask(mask)
		diff, err := Project(cfg, cfg.Theme)
		require.NoError(t, err, mask)

		var want []defaults.Field
		for _, f := range defaults.Fields() {
			if mask&(1<<f) != 0 {
				want = append(want, f)
			}
		}
		require.Equal(t, len(want), diff.Len(), mask)
		if len(want) > 0 {
			require.Equal(t, want, diff.Fields(), mask)
		}
	}
}

func TestProjectIsIdempotentAndPure(t *testing.T) {
	t.Parallel()

	cfg := configForMask(63)
	snapshot := cfg

	first, err := Project(cfg, cfg.Theme)
	require.NoError(t, err)
	second, err := Project(cfg, cfg.Theme)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, snapshot, cfg)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestProjectEntryValues(t *testing.T) {
	t.Parallel()

	cfg := configForMask(63)
	diff, err := Project(cfg, cfg.Theme)
	require.NoError(t, err)

	primary, ok := diff.Get(defaults.FieldPrimaryColor)
	require.True(t, ok)
	require.Equal(t, "#ff0000", primary.Value)
	require.Equal(t, "0 100% 50%", primary.HSL)
	require.Equal(t, "0 0% 100%", primary.Foreground)

	radius, ok := diff.Get(defaults.FieldRadius)
	require.True(t, ok)
	require.Equal(t, "1.2", radius.Value)
	require.Equal(t, "rem", radius.Unit)

	interaction, ok := diff.Get(defaults.FieldAllowClickOutside)
	require.True(t, ok)
	require.Equal(t, "false", interaction.Value)

	theme, ok := diff.Get(defaults.FieldTheme)
	require.True(t, ok)
	require.Empty(t, theme.HSL)
}

func TestProjectPrimaryColorUsesCurrentTheme(t *testing.T) {
	t.Parallel()

	cfg := defaults.Baseline()
	cfg.PrimaryColor = "#A855F7"

	diff, err := Project(cfg, options.ThemeMidnight)
	require.NoError(t, err)
	require.False(t, diff.Has(defaults.FieldPrimaryColor))

	diff, err = Project(cfg, options.ThemeLight)
	require.NoError(t, err)
	entry, ok := diff.Get(defaults.FieldPrimaryColor)
	require.True(t, ok)
	require.Equal(t, "#a855f7", entry.Value)
}

func TestProjectFailsAtomically(t *testing.T) {
	t.Parallel()

	cfg := configForMask(63)
	cfg.PrimaryColor = "#zzzzzz"
	diff, err := Project(cfg, cfg.Theme)
	require.ErrorIs(t, err, stagehanderrors.ErrInvalidColorFormat)
	require.True(t, diff.Empty())

	cfg = defaults.Baseline()
	cfg.Backdrop = "fog"
	_, err = Project(cfg, options.ThemeLight)
	require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)

	_, err = Project(defaults.Baseline(), "neon")
	require.ErrorIs(t, err, stagehanderrors.ErrUnrecognizedOption)

	// A failed call leaves nothing behind for the next one.
	diff, err = Project(defaults.Baseline(), options.ThemeLight)
	require.NoError(t, err)
	require.True(t, diff.Empty())
}

func TestDiffMarshalJSON(t *testing.T) {
	t.Parallel()

	empty, err := json.Marshal(Diff{})
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(empty))

	cfg := defaults.Baseline()
	cfg.AllowClickOutside = false
	diff, err := Project(cfg, options.ThemeLight)
	require.NoError(t, err)

	encoded, err := json.Marshal(diff)
	require.NoError(t, err)
	require.JSONEq(t, `[{"field":"allowClickOutside","value":"false"}]`, string(encoded))
}
