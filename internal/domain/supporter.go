package domain

import "strings"

// Supporter is one extracted partner entry from the supporters page.
// Industry, Link and Logo are optional; an empty string means the field was
// not found near the entry's heading.
type Supporter struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Link     string `json:"link,omitempty"`
	Logo     string `json:"logo,omitempty"`
	SortKey  string `json:"sort_key"`
}

// Qualifies reports whether the entry carries enough evidence of being a real
// partner. A heading alone is not enough: the page contains headings that are
// calls-to-action or section titles, so at least one of logo, industry or
// link must be present.
func (s *Supporter) Qualifies() bool {
	return s.Logo != "" || s.Industry != "" || s.Link != ""
}

// DedupKey identifies duplicate entries across the page. Industry is
// deliberately excluded so the first occurrence keeps its industry text.
func (s *Supporter) DedupKey() string {
	return s.Name + "\x00" + s.Link + "\x00" + s.Logo
}

var sortKeyFolder = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// SortKey derives the ordering key for a display name: trimmed, lowercased,
// German umlauts and ß folded to their ae/oe/ue/ss transliteration,
// whitespace runs collapsed to single spaces. Used only for ordering; the
// display name is never overwritten.
func SortKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = sortKeyFolder.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
