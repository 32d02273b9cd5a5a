package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-3); got != DefaultLimit {
		t.Fatalf("expected default limit for negative, got %d", got)
	}
	if got := NormalizeLimit(500); got != MaxLimit {
		t.Fatalf("expected max limit cap, got %d", got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	encoded := EncodeCursor(Cursor{ID: "prod_013"})

	cursor, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cursor == nil || cursor.ID != "prod_013" {
		t.Fatalf("round trip mismatch: %+v", cursor)
	}
}

func TestParseCursorEmpty(t *testing.T) {
	cursor, err := ParseCursor("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor for blank input, got %+v", cursor)
	}
}

func TestParseCursorInvalid(t *testing.T) {
	if _, err := ParseCursor("%%%not-base64%%%"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}
