// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"fmt"

	"github.com/pdiddy/idea-generator/pkg/types"
)

// Messages holds the labels and fallback text for one locale.
type Messages struct {
	// WordLabel is a format string taking the 1-based slot number.
	WordLabel string

	// Separator joins the labeled word slots.
	Separator string

	// ThemeLabel prefixes a pitch-battle theme.
	ThemeLabel string

	// Placeholder fills word slots the list was too short to supply.
	Placeholder string

	// NoWords is shown when no word could be drawn.
	NoWords string

	// NoTheme is shown when the theme list is empty.
	NoTheme string
}

var messages = map[types.Locale]Messages{
	types.LocaleJapanese: {
		WordLabel:   "単語%d：",
		Separator:   ", ",
		ThemeLabel:  "お題：",
		Placeholder: "N/A",
		NoWords:     "単語リストから単語を生成できませんでした。",
		NoTheme:     "テーマリストからテーマを生成できませんでした。",
	},
	types.LocaleEnglish: {
		WordLabel:   "Word %d: ",
		Separator:   ", ",
		ThemeLabel:  "Theme: ",
		Placeholder: "N/A",
		NoWords:     "Could not generate words from the word list.",
		NoTheme:     "Could not generate a theme from the theme list.",
	},
}

// MessagesFor returns the messages for locale. An empty locale selects Japanese.
func MessagesFor(locale types.Locale) (Messages, error) {
	if locale == "" {
		locale = types.LocaleJapanese
	}
	m, ok := messages[locale]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported locale %q: use ja or en", locale)
	}
	return m, nil
}
