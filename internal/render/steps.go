package render

import (
	"fmt"
	"strings"
)

type sampleStep struct {
	title       string
	description string
	image       string
}

// Placeholder steps shared by the snippet header and the prompt's trailing example.
var sampleSteps = []sampleStep{
	{
		title:       "Design Your Experience",
		description: "Use the controls to **customize** this modal in real-time.",
		image:       "https://placehold.co/1000x562/3b82f6/fff?text=Playground+Preview",
	},
	{
		title:       "Copy & Paste",
		description: "When you are happy with the look, **copy the code** below!",
		image:       "https://placehold.co/1000x562/10b981/fff?text=Ready+to+Ship",
	},
}

func writeSampleSteps(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%sconst steps = [\n", indent)
	for _, s := range sampleSteps {
		fmt.Fprintf(b, "%s  {\n", indent)
		fmt.Fprintf(b, "%s    title: %q,\n", indent, s.title)
		fmt.Fprintf(b, "%s    description: %q,\n", indent, s.description)
		fmt.Fprintf(b, "%s    image: %q,\n", indent, s.image)
		fmt.Fprintf(b, "%s  },\n", indent)
	}
	fmt.Fprintf(b, "%s];\n", indent)
}
