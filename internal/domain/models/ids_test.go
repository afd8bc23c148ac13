package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIDDecodesStrings(t *testing.T) {
	var s SiteSlide
	if err := json.Unmarshal([]byte(`{"id": "abc", "title": "t"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.ID != FlexID("abc") {
		t.Errorf("got %q", s.ID)
	}
}

func TestFlexIDDecodesNumbers(t *testing.T) {
	// Legacy slide records carried numeric ids.
	var s SiteSlide
	if err := json.Unmarshal([]byte(`{"id": 3, "title": "t"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.ID != FlexID("3") {
		t.Errorf("got %q", s.ID)
	}
}

func TestFlexIDNumericAndStringCompareEqual(t *testing.T) {
	var a, b LocationSlide
	if err := json.Unmarshal([]byte(`{"id": 1}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"id": "1"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.ID != b.ID {
		t.Errorf("ids differ: %q vs %q", a.ID, b.ID)
	}
}

func TestFlexIDMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(SiteSlide{ID: FlexID("7")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) == "" || !json.Valid(out) {
		t.Fatalf("invalid json: %s", out)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["id"] != "7" {
		t.Errorf("id marshaled as %T %v", decoded["id"], decoded["id"])
	}
}
