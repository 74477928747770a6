package validation

import (
	"testing"
	"time"
)

func TestDateValid(t *testing.T) {
	v := New()
	v.Date("since", "2024-01-15")
	if err := v.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDateInvalid(t *testing.T) {
	for _, value := range []string{"2024-13-01", "15-01-2024", "2024/01/15", "yesterday", "2024-01-15T10:00:00Z"} {
		v := New()
		v.Date("since", value)
		if err := v.Validate(); err == nil {
			t.Errorf("expected error for %q", value)
		}
	}
}

func TestDateEmptyPasses(t *testing.T) {
	v := New()
	v.Date("since", "")
	if err := v.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}

	got, err = ParseDate("")
	if err != nil || got != nil {
		t.Errorf("empty value should parse to nil, got %v, %v", got, err)
	}
}

func TestRequiredAndChaining(t *testing.T) {
	v := New()
	v.Required("url", "  ").Date("since", "bad")

	err := v.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(*ValidationErrors)
	if !ok {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d", len(verrs.Errors))
	}
}

func TestGitURL(t *testing.T) {
	valid := []string{
		"https://github.com/user/repo.git",
		"https://github.com/user/repo",
		"git@github.com:user/repo.git",
	}
	for _, u := range valid {
		v := New()
		v.GitURL("url", u)
		if err := v.Validate(); err != nil {
			t.Errorf("expected %q to be valid: %v", u, err)
		}
	}

	v := New()
	v.GitURL("url", "not a url")
	if err := v.Validate(); err == nil {
		t.Error("expected error for invalid git URL")
	}
}

func TestInRange(t *testing.T) {
	v := New()
	v.InRange("top", 5, 1, 100)
	if err := v.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	v = New()
	v.InRange("top", 0, 1, 100)
	if err := v.Validate(); err == nil {
		t.Error("expected error for out-of-range value")
	}
}
