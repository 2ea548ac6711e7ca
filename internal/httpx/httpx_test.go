package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestParsePageLimitDefaults(t *testing.T) {
	page, limit, err := ParsePageLimit(url.Values{}, 10, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 10 {
		t.Fatalf("got page=%d limit=%d, want 1/10", page, limit)
	}
}

func TestParsePageLimitReadsQuery(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"25"}}
	page, limit, err := ParsePageLimit(values, 10, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 25 {
		t.Fatalf("got page=%d limit=%d, want 3/25", page, limit)
	}
}

func TestParsePageLimitClampsToMax(t *testing.T) {
	values := url.Values{"limit": {"5000"}}
	_, limit, err := ParsePageLimit(values, 10, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 100 {
		t.Fatalf("got limit=%d, want 100", limit)
	}
}

func TestParsePageLimitRejectsBadInput(t *testing.T) {
	for _, values := range []url.Values{
		{"page": {"0"}},
		{"page": {"-1"}},
		{"page": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"ten"}},
	} {
		if _, _, err := ParsePageLimit(values, 10, 100); err == nil {
			t.Errorf("values %v: expected error", values)
		}
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a","extra":true}`), &dst)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &dst)
	if err == nil {
		t.Fatal("expected error for trailing JSON value")
	}
}
