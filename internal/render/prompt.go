package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/projector"
)

const (
	// DocsURL is where the prompt points readers for the full API.
	DocsURL = "https://github.com/asadkhalid305/onstage"

	stepCustomised = "3. Implement the onboarding flow with these specific settings:"
	stepDefaults   = "3. Implement the onboarding flow using the default settings (no extra props needed)."
)

// Prompt renders setup instructions for an assistant: a fixed preamble, one bullet
// per customised setting and a trailing integration example.
func Prompt(diff projector.Diff) string {
	var b strings.Builder

	b.WriteString("I want to add a professional onboarding wizard to my React app using the 'onstage' library.\n\n")
	fmt.Fprintf(&b, "Please refer to the official documentation for full API details: %s\n\n", DocsURL)
	b.WriteString("1. Install the package: `npm install onstage`\n")
	b.WriteString("2. Import the styles in my root file (App.tsx or main.tsx): `import 'onstage/styles.css'`\n")

	if diff.Empty() {
		b.WriteString(stepDefaults)
		b.WriteString("\n")
	} else {
		b.WriteString(stepCustomised)
		b.WriteString("\n\n")
		for _, e := range diff.Entries() {
			b.WriteString("- ")
			b.WriteString(bullet(e))
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nUse this structure as a reference for the integration:\n\n")
	b.WriteString("```tsx\n")
	b.WriteString(`import { OnboardingProvider, OnboardingModal } from "onstage";` + "\n\n")
	writeSampleSteps(&b, "")
	b.WriteString("\nexport function App() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <OnboardingProvider steps={steps}>\n")
	fmt.Fprintf(&b, "      <%s />\n", componentName)
	b.WriteString("    </OnboardingProvider>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")
	b.WriteString("```\n")

	return b.String()
}

func bullet(e projector.Entry) string {
	switch e.Field {
	case defaults.FieldTheme:
		return fmt.Sprintf("Theme: Use the %q preset.", e.Value)
	case defaults.FieldBackdrop:
		return fmt.Sprintf("Backdrop: Set it to %q.", e.Value)
	case defaults.FieldGradient:
		return fmt.Sprintf("Gradient: Set the background gradient to %q.", e.Value)
	case defaults.FieldAllowClickOutside:
		if e.Value == "false" {
			return "Interaction: Enable Strict Mode (disable clicking outside to close)."
		}
		return "Interaction: Allow clicking outside the modal to close it."
	case defaults.FieldPrimaryColor:
		return fmt.Sprintf("Brand Color: Override the primary color to HSL %q (%s) with foreground HSL %q. Ensure high contrast foreground text for accessibility.", e.HSL, VarPrimary, e.Foreground)
	case defaults.FieldRadius:
		return fmt.Sprintf("Styling: Set the border radius to %s%s (%s units).", e.Value, e.Unit, e.Unit)
	default:
		return fmt.Sprintf("%s: Set it to %q.", e.Field, e.Value)
	}
}
