package reference

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	builtinOnce sync.Once
	builtinList *List
)

// words used to split the concatenated SVG color names ("lightgoldenrodyellow")
// into display words. Longest match wins.
var nameWords = []string{
	"alice", "almond", "antique", "aqua", "aquamarine", "blanched", "blue", "blush", "brick",
	"brown", "burlywood", "cadet", "chiffon", "coral", "cornflower", "cornsilk", "cream",
	"cyan", "dark", "deep", "dim", "dodger", "drab", "fire", "floral", "forest", "ghost",
	"gold", "goldenrod", "gray", "green", "grey", "hot", "indian", "khaki", "lace", "lavender",
	"lawn", "lemon", "light", "lime", "magenta", "medium", "midnight", "mint", "misty",
	"navajo", "old", "olive", "orange", "orchid", "pale", "papaya", "peach", "pink", "powder",
	"puff", "purple", "rebecca", "red", "rose", "rosy", "royal", "saddle", "salmon", "sandy",
	"sea", "shell", "sky", "slate", "smoke", "spring", "steel", "turquoise", "violet", "whip",
	"white", "yellow",
}

func init() {
	sort.Slice(nameWords, func(i, j int) bool { return len(nameWords[i]) > len(nameWords[j]) })
}

// Builtin returns the bundled reference list: the SVG 1.1 named colors in
// alphabetical order, with display names such as "Light Goldenrod Yellow".
func Builtin() *List {
	builtinOnce.Do(func() {
		title := cases.Title(language.English)
		entries := make([]Entry, 0, len(colornames.Names))
		for _, key := range colornames.Names {
			c := colornames.Map[key]
			words := splitName(key)
			for i, w := range words {
				words[i] = title.String(w)
			}
			entries = append(entries, Entry{
				Name: strings.Join(words, " "),
				Hex:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			})
		}
		list, err := NewList("builtin", entries)
		if err != nil {
			panic(fmt.Sprintf("reference: builtin list is invalid: %v", err))
		}
		builtinList = list
	})
	return builtinList
}

// splitName greedily splits a concatenated lowercase name into known words.
// Unknown remainders are kept as a single word.
func splitName(name string) []string {
	var out []string
	rest := name
	for rest != "" {
		matched := ""
		for _, w := range nameWords {
			if strings.HasPrefix(rest, w) {
				matched = w
				break
			}
		}
		if matched == "" {
			out = append(out, rest)
			break
		}
		out = append(out, matched)
		rest = rest[len(matched):]
	}
	return out
}
