package generation

import (
	"fmt"
	"strings"

	"github.com/fatflowers/prayerbook/pkg/types"
)

// resultSchema is the JSON schema sent with every request.
var resultSchema = map[string]any{
	"type":     "object",
	"required": []string{"prayer", "scriptures"},
	"properties": map[string]any{
		"prayer": map[string]any{"type": "string", "description": "The full prayer text"},
		"scriptures": map[string]any{
			"type":     "array",
			"minItems": minScriptures,
			"maxItems": maxScriptures,
			"items": map[string]any{
				"type":     "object",
				"required": []string{"reference", "verse"},
				"properties": map[string]any{
					"reference": map[string]any{"type": "string", "description": "Bible reference, e.g. Philippians 4:6-7"},
					"verse":     map[string]any{"type": "string", "description": "Exact verse text, word for word"},
				},
			},
		},
	},
}

func buildPrompt(req Request) string {
	lang := "English"
	greeting := "Dear"
	translations := "a standard translation such as NIV, ESV or NKJV"
	if req.Language == types.LanguageSpanish {
		lang = "Spanish"
		greeting = "Querida"
		translations = "a Spanish translation such as Reina-Valera 1960 or NVI"
	}
	who := fmt.Sprintf("for %s", req.RecipientName)
	if req.Type == types.PrayerTypeMyself {
		who = fmt.Sprintf("for %s, who is praying for themselves", req.RecipientName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a warm, personal, scripture-rooted prayer %s.\n", who)
	fmt.Fprintf(&b, "Their situation: %s\n", req.UserInput)
	fmt.Fprintf(&b, "Language: %s.\n", lang)
	fmt.Fprintf(&b, "Open with \"%s %s,\", speak to their situation with hope, weave in 2-3 Bible verses, ", greeting, req.RecipientName)
	b.WriteString("close by affirming they are loved and not alone, and keep it to 200-300 words.\n")
	fmt.Fprintf(&b, "Quote every verse exactly as written in %s. Do not paraphrase.", translations)
	return b.String()
}
