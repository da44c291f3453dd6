package domain

import "testing"

func TestSortKeyFoldsGermanCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Müller GmbH", "mueller gmbh"},
		{"Groß & Söhne", "gross & soehne"},
		{"Österreich 2040", "oesterreich 2040"},
		{"ÄÖÜ", "aeoeue"},
		{"  ACME   Holding  ", "acme holding"},
		{"plain name", "plain name"},
	}

	for _, c := range cases {
		if got := SortKey(c.in); got != c.want {
			t.Fatalf("SortKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSortKeyOrderingMatchesByteComparison(t *testing.T) {
	// "Müller & Co" folds to "mueller & co" which sorts after "beta ag"
	// under plain byte comparison; no locale collation is involved.
	beta := SortKey("Beta AG")
	mueller := SortKey("Müller & Co")
	acme := SortKey("Acme GmbH")

	if !(acme < beta && beta < mueller) {
		t.Fatalf("expected %q < %q < %q", acme, beta, mueller)
	}
}

func TestQualifiesRequiresEvidence(t *testing.T) {
	bare := Supporter{Name: "Just A Heading"}
	if bare.Qualifies() {
		t.Fatalf("name-only entry must not qualify")
	}

	cases := []Supporter{
		{Name: "A", Logo: "https://example.com/a.png"},
		{Name: "B", Industry: "IT"},
		{Name: "C", Link: "https://example.com"},
	}
	for _, c := range cases {
		if !c.Qualifies() {
			t.Fatalf("entry %q should qualify", c.Name)
		}
	}
}

func TestDedupKeyIgnoresIndustry(t *testing.T) {
	a := Supporter{Name: "Acme", Link: "https://acme.example.com", Logo: "https://acme.example.com/l.png", Industry: "Bau"}
	b := Supporter{Name: "Acme", Link: "https://acme.example.com", Logo: "https://acme.example.com/l.png", Industry: "IT"}

	if a.DedupKey() != b.DedupKey() {
		t.Fatalf("entries differing only in industry must share a dedup key")
	}

	c := Supporter{Name: "Acme", Link: "https://other.example.com", Logo: "https://acme.example.com/l.png"}
	if a.DedupKey() == c.DedupKey() {
		t.Fatalf("entries with different links must not share a dedup key")
	}
}
