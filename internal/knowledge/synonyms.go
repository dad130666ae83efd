package knowledge

import (
	"strings"

	"material-advisor/utils"
)

type synonymEntry struct {
	key      string
	synonyms []string
}

// synonymTable maps a canonical normalized phrase to its surface variants.
// Order matters: expansions are emitted in table order.
var synonymTable = []synonymEntry{
	{key: "xi mang", synonyms: []string{"ximang", "cement", "xm"}},
	{key: "gach", synonyms: []string{"brick", "gach xay"}},
	{key: "cat", synonyms: []string{"sand"}},
	{key: "da 1x2", synonyms: []string{"da xay dung", "da dam 1x2"}},
	{key: "thep", synonyms: []string{"sat thep", "steel", "rebar"}},
	{key: "giao hang", synonyms: []string{"ship", "van chuyen", "freeship"}},
	{key: "bao hanh", synonyms: []string{"warranty"}},
	{key: "be tong", synonyms: []string{"concrete", "betong"}},
	{key: "chong tham", synonyms: []string{"waterproof"}},
}

// Expand returns the raw query, its normalized form and every single-replacement
// variant from the synonym table, deduplicated in insertion order. Variants are
// never chained: each one differs from the normalized query by one replacement.
func Expand(rawQuery string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 4)
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(rawQuery)
	add(utils.Normalize(rawQuery))

	base := utils.CollapseSpaces(rawQuery)
	if base == "" {
		return out
	}
	add(base)

	for _, entry := range synonymTable {
		if strings.Contains(base, entry.key) {
			for _, syn := range entry.synonyms {
				add(strings.ReplaceAll(base, entry.key, utils.CollapseSpaces(syn)))
			}
		}
		for _, syn := range entry.synonyms {
			s := utils.CollapseSpaces(syn)
			if strings.Contains(base, s) {
				add(strings.ReplaceAll(base, s, entry.key))
			}
		}
	}
	return out
}
