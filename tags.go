package castable

import (
	"strings"
	"unicode"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register cast tags with sentinel
	sentinel.Tag("cast")
	sentinel.Tag("column")
}

// CastsFromStruct derives a cast registry from T's struct tags. Fields
// carrying a `cast:"..."` tag contribute an entry; the attribute key is
// the `column:"..."` tag when present, otherwise the snake_cased field
// name.
//
//	type User struct {
//	    Email   string `cast:"encrypted"`
//	    Options string `cast:"json" column:"opts"`
//	    SignedAt string `cast:"datetime"`
//	}
//
// yields {"email": "encrypted", "opts": "json", "signed_at": "datetime"}.
func CastsFromStruct[T any]() map[string]any {
	spec := sentinel.Scan[T]()

	out := make(map[string]any)
	for _, field := range spec.Fields {
		decl, ok := field.Tags["cast"]
		if !ok {
			continue
		}
		key := field.Tags["column"]
		if key == "" {
			key = snakeCase(field.Name)
		}
		out[key] = decl
	}
	return out
}

// snakeCase converts an exported field name to its column form.
// Acronym runs stay together: UserID becomes user_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
