package team

import "testing"

func strPtr(v string) *string { return &v }

func TestDedupe_FirstMentionWins(t *testing.T) {
	t.Parallel()

	got := Dedupe([]Team{
		{ID: 217, Name: strPtr("Barcelona"), Gender: strPtr("male")},
		{ID: 206, Name: strPtr("Deportivo Alavés"), Gender: strPtr("male")},
		{ID: 217, Name: strPtr("FC Barcelona"), Gender: strPtr("male")},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	if got[0].ID != 217 || *got[0].Name != "Barcelona" {
		t.Fatalf("expected first mention of 217 to win, got %+v", got[0])
	}
	if got[1].ID != 206 {
		t.Fatalf("expected first-seen order, got %+v", got)
	}
}

func TestDedupe_Empty(t *testing.T) {
	t.Parallel()

	if got := Dedupe(nil); len(got) != 0 {
		t.Fatalf("expected no teams, got %d", len(got))
	}
}
