package metadata

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"BeepBoop (Single)", "BeepBoop"},
		{"f(x)", "f(x)"},
		{"Test Song [Remastered]", "Test Song"},
		{"Song With No Brackets", "Song With No Brackets"},
		{"Song (Live) [2011 Remaster]", "Song"},
		{"  Padded (Demo)  ", "Padded"},
		{"Open (paren", "Open (paren"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Simplify(tt.input); got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	inputs := []string{
		"BeepBoop (Single)",
		"A (b) c (d)",
		"Song [Live] (Remix)",
		"x (a)b )",
		"f(x)",
	}

	for _, in := range inputs {
		once := Simplify(in)
		if twice := Simplify(once); twice != once {
			t.Errorf("Simplify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSimplifyRecord(t *testing.T) {
	rec := Record{
		Title:  Ptr("Song (Live)"),
		Artist: Ptr("Band"),
		Album:  Ptr("Album (Deluxe)"),
	}

	got, changed := simplifyRecord(rec)
	if !changed {
		t.Fatal("expected simplification to change the title")
	}
	if *got.Title != "Song" || *got.Artist != "Band" {
		t.Errorf("simplified = %s, want \"Song\" by \"Band\"", got)
	}
	if *got.Album != "Album (Deluxe)" {
		t.Errorf("album should be untouched, got %q", *got.Album)
	}
	if *rec.Title != "Song (Live)" {
		t.Errorf("original record was modified: %q", *rec.Title)
	}

	if _, changed := simplifyRecord(got); changed {
		t.Error("second simplification should be a no-op")
	}
}
