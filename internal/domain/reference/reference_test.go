package reference

import "testing"

func TestNameOverrides_Canonicalize(t *testing.T) {
	t.Parallel()

	overrides := DefaultPlayerOverrides()
	cases := []struct {
		id   int64
		raw  string
		want string
	}{
		{id: 4354, raw: "Phil Foden", want: "Philip Foden"},
		{id: 3961, raw: "N'Golo Kante", want: "N'Golo Kanté"},
		{id: 184468, raw: "Alvaro Zamora", want: "Álvaro Zamora"},
		{id: 1, raw: "Unlisted Player", want: "Unlisted Player"},
	}
	for _, tc := range cases {
		if got := overrides.Canonicalize(tc.id, tc.raw); got != tc.want {
			t.Fatalf("canonicalize %d: got=%q want=%q", tc.id, got, tc.want)
		}
	}
}

func TestNameOverrides_NilIsIdentity(t *testing.T) {
	t.Parallel()

	var overrides NameOverrides
	if got := overrides.Canonicalize(4354, "Phil Foden"); got != "Phil Foden" {
		t.Fatalf("nil overrides must not rewrite names, got %q", got)
	}
	if got := overrides.CanonicalizePtr(nil, nil); got != nil {
		t.Fatalf("expected nil name for absent id")
	}
}

func TestNameOverrides_CanonicalizePtr(t *testing.T) {
	t.Parallel()

	overrides := DefaultPlayerOverrides()
	id := int64(5082)
	raw := "Marta"
	got := overrides.CanonicalizePtr(&id, &raw)
	if got == nil || *got != "Marta Vieira da Silva" {
		t.Fatalf("unexpected canonical name: %v", got)
	}

	other := int64(7)
	if got := overrides.CanonicalizePtr(&other, &raw); got != &raw {
		t.Fatalf("expected raw pointer to be returned unchanged")
	}
}

func TestNameOverrides_Merge(t *testing.T) {
	t.Parallel()

	base := NameOverrides{1: "A", 2: "B"}
	merged := base.Merge(NameOverrides{2: "B2", 3: "C"})
	if merged[1] != "A" || merged[2] != "B2" || merged[3] != "C" {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if base[2] != "B" {
		t.Fatalf("merge must not mutate the receiver")
	}
}

func TestCatalog_FirstSeenWins(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	if !c.Observe(10, "Left Back") {
		t.Fatalf("expected first sighting to be new")
	}
	c.Observe(20, "Right Back")
	if c.Observe(10, "LB") {
		t.Fatalf("expected repeated id to be reported as known")
	}
	c.Observe(10, "Left Back")

	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if entries[0] != (Entry{ID: 10, Name: "Left Back"}) || entries[1].ID != 20 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	conflicts := c.Conflicts()
	if len(conflicts) != 1 || conflicts[0].Rejected != "LB" || conflicts[0].Kept != "Left Back" {
		t.Fatalf("unexpected conflicts: %+v", conflicts)
	}
}

func TestCatalog_ObserveRefSkipsMissingID(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	name := "Regular Play"
	c.ObserveRef(nil, &name)
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog")
	}
	id := int64(1)
	c.ObserveRef(&id, nil)
	if got, ok := c.Name(1); !ok || got != "" {
		t.Fatalf("unexpected name for id without name: %q %v", got, ok)
	}
}

func TestCatalog_LaterNameFillsEmptySlot(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	id := int64(5503)
	c.ObserveRef(&id, nil)
	name := "Lionel Andrés Messi Cuccittini"
	c.ObserveRef(&id, &name)
	empty := ""
	c.ObserveRef(&id, &empty)

	if got, _ := c.Name(id); got != name {
		t.Fatalf("expected the first non-empty name, got %q", got)
	}
	if c.Len() != 1 {
		t.Fatalf("unexpected entry count: %d", c.Len())
	}
	if conflicts := c.Conflicts(); len(conflicts) != 0 {
		t.Fatalf("an absent name is not a conflict: %+v", conflicts)
	}
}
