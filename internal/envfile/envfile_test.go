package envfile

import "testing"

func TestParse_RoundTrip(t *testing.T) {
	vars := Parse("KEY1=val1\n#comment\nKEY2=\"val2\"\n\n")

	if len(vars) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(vars))
	}
	if vars[0].Key != "KEY1" || vars[0].Value != "val1" {
		t.Fatalf("unexpected first variable: %+v", vars[0])
	}
	if vars[1].Key != "KEY2" || vars[1].Value != "val2" {
		t.Fatalf("expected quotes stripped, got %+v", vars[1])
	}
}

func TestParse_ValueContainingEquals(t *testing.T) {
	vars := Parse("DATABASE_URL=postgres://u:p@host/db?sslmode=disable")

	if len(vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(vars))
	}
	if vars[0].Value != "postgres://u:p@host/db?sslmode=disable" {
		t.Fatalf("value split on wrong '=': %q", vars[0].Value)
	}
}

func TestParse_SkipsCommentsBlanksAndEmptyKeys(t *testing.T) {
	vars := Parse("  # indented comment\n\n   \n=orphan-value\nGOOD=1")

	if len(vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(vars))
	}
	if vars[0].Key != "GOOD" {
		t.Fatalf("unexpected variable: %+v", vars[0])
	}
}

func TestParse_QuoteStrippedOnlyWhenPaired(t *testing.T) {
	vars := Parse("A=\"half\nB=half\"\nC=\"\"")

	if vars[0].Value != "\"half" || vars[1].Value != "half\"" {
		t.Fatalf("unpaired quotes must survive: %q, %q", vars[0].Value, vars[1].Value)
	}
	if vars[2].Value != "" {
		t.Fatalf("empty quoted value should strip to empty, got %q", vars[2].Value)
	}
}

func TestMerge_NeverDuplicatesKeys(t *testing.T) {
	existing := []Variable{{ID: "1", Key: "A", Value: "1"}}
	parsed := []Variable{{ID: "2", Key: "A", Value: "2"}, {ID: "3", Key: "B", Value: "3"}}

	merged := Merge(existing, parsed)

	if len(merged) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(merged))
	}
	if merged[0].Key != "A" || merged[0].Value != "1" {
		t.Fatalf("existing entry must win: %+v", merged[0])
	}
	if merged[1].Key != "B" || merged[1].Value != "3" {
		t.Fatalf("unexpected second entry: %+v", merged[1])
	}
}

func TestMerge_DiscardsBlankExistingRows(t *testing.T) {
	existing := []Variable{
		{ID: "1", Key: "", Value: ""},
		{ID: "2", Key: "KEEP", Value: ""},
	}
	parsed := []Variable{{ID: "3", Key: "NEW", Value: "v"}}

	merged := Merge(existing, parsed)

	if len(merged) != 2 {
		t.Fatalf("expected blank row dropped, got %d entries", len(merged))
	}
	if merged[0].Key != "KEEP" || merged[1].Key != "NEW" {
		t.Fatalf("unexpected merge order: %+v", merged)
	}
}
