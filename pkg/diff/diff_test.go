package diff

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Unified("a\nb\n", "a\nb\n", Options{}))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	expected := "<OnboardingModal\n  theme=\"dark\"\n/>\n"
	actual := "<OnboardingModal\n  theme=\"ocean\"\n/>\n"

	got := Unified(expected, actual, Options{ExpectedLabel: "default.tsx", ActualLabel: "custom.tsx"})
	want := "--- default.tsx\n" +
		"+++ custom.tsx\n" +
		"@@ -1,3 +1,3 @@\n" +
		" <OnboardingModal\n" +
		"-  theme=\"dark\"\n" +
		"+  theme=\"ocean\"\n" +
		" />\n"
	require.Equal(t, want, got)
}

func TestUnifiedInsertedLines(t *testing.T) {
	t.Parallel()

	got := Unified("<OnboardingModal />\n", "<OnboardingModal\n  backdrop=\"blur\"\n/>\n", Options{})

	require.True(t, strings.HasPrefix(got, "--- expected\n+++ actual\n"))
	require.Contains(t, got, "-<OnboardingModal />\n")
	require.Contains(t, got, "+  backdrop=\"blur\"\n")
}

func TestGenerateUnifiedDiffStampsHeaders(t *testing.T) {
	t.Parallel()

	got := GenerateUnifiedDiff([]byte("a\n"), []byte("b\n"), "left", "right")
	require.Regexp(t, `^--- left\t\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\n`, got)
}

func TestUnifiedFixedClock(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC) }
	got := Unified("a\n", "b\n", Options{Now: now})
	require.Contains(t, got, "--- expected\t2025-10-03 12:00:00\n")
}

func TestUnifiedTruncation(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < 11000; i++ {
		expected.WriteString("expected line\n")
		if i%2 == 0 {
			actual.WriteString("actual line\n")
		} else {
			actual.WriteString("expected line\n")
		}
	}

	got := Unified(expected.String(), actual.String(), Options{})
	require.True(t, strings.HasSuffix(got, truncateMessage+"\n"))
	require.LessOrEqual(t, strings.Count(got, "\n"), maxDiffLines+1)
}
