package places

import "strings"

// Tags the provider attaches to nearly everything; they carry no cuisine
// information.
var genericTags = map[string]bool{
	"restaurant":        true,
	"food":              true,
	"point_of_interest": true,
	"establishment":     true,
}

// Cuisine derives a display cuisine from the provider's category tags: the
// first non-generic tag, underscores turned into spaces and each word
// title-cased. Falls back to the literal "Restaurant" when nothing specific
// remains.
func Cuisine(types []string) string {
	for _, tag := range types {
		if genericTags[tag] {
			continue
		}
		return titleCase(strings.ReplaceAll(tag, "_", " "))
	}
	return "Restaurant"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
