package shader

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/mixrgb/blend"
)

// displayPhrases spells out identifiers that are abbreviated in the host enum.
var displayPhrases = map[blend.Mode]string{
	blend.SoftLight:   "soft light",
	blend.LinearLight: "linear light",
}

// displayNames is built once; a cases.Caser is not safe for concurrent use.
var displayNames = buildDisplayNames()

func buildDisplayNames() map[blend.Mode]string {
	title := cases.Title(language.English)
	names := make(map[blend.Mode]string, len(blend.Modes()))
	for _, m := range blend.Modes() {
		phrase, ok := displayPhrases[m]
		if !ok {
			phrase = m.String()
		}
		names[m] = title.String(phrase)
	}
	return names
}

// DisplayName returns the user-facing name of a blend mode, such as
// "Soft Light". Invalid modes fall back to Mode.String.
func DisplayName(m blend.Mode) string {
	if name, ok := displayNames[m]; ok {
		return name
	}
	return m.String()
}

// modeIdentifiers lists the host enum identifiers in index order.
func modeIdentifiers() []string {
	modes := blend.Modes()
	ids := make([]string, len(modes))
	for i, m := range modes {
		ids[i] = m.String()
	}
	return ids
}
