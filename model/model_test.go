package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseState(t *testing.T) {
	if st, err := ParseState(""); err != nil || st != StateAll {
		t.Fatalf("empty state: got %v %v; want ALL nil", st, err)
	}
	if st, err := ParseState("CURRENT"); err != nil || st != StateCurrent {
		t.Fatalf("CURRENT: got %v %v", st, err)
	}
	_, err := ParseState("SOMETIMES")
	if err == nil {
		t.Fatal("expected error for unknown state")
	}
	if Code(err) != ErrBadRequest {
		t.Fatalf("code = %q; want BAD_REQUEST", Code(err))
	}
}

func TestDateTimeJSON(t *testing.T) {
	in := NewDateTime(time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC))

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-08-31T10:30:00"` {
		t.Fatalf("marshal = %s", b)
	}

	var out DateTime
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Time.Equal(in.Time) {
		t.Fatalf("round trip: %v != %v", out.Time, in.Time)
	}

	if err := json.Unmarshal([]byte(`"31/08/2026"`), &out); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestErrCodeExtraction(t *testing.T) {
	err := Err(ErrNotFound, "item not found: %d", 5)
	if Code(err) != ErrNotFound {
		t.Fatalf("code = %q", Code(err))
	}
	if err.Error() != "item not found: 5" {
		t.Fatalf("msg = %q", err.Error())
	}
}
