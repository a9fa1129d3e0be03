package models

// Bilingual fields are stored as flat sibling columns (name / name_mr)
// because both shipped frontends read the flat keys. Language selection
// happens in exactly one place: PickLang and the Text/Label helpers below.

// PickLang returns the Marathi variant for lang "mr", otherwise English.
// A blank Marathi value falls back to English so exports never print
// empty cells.
func PickLang(lang, en, mr string) string {
	if lang == "mr" && mr != "" {
		return mr
	}
	return en
}
