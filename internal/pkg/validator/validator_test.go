package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "42", "0001234"}
	invalid := []string{"", "12.5", "-1", "abc", "1a"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-13"); !ok {
		t.Error("IsValidDate(2025-06-13) = false, want true")
	}
	invalid := []string{"", "13-06-2025", "2025/06/13", "2025-13-01", "yesterday"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"ana", "user.name", "first_last", "a-b-c", "abc123"}
	invalid := []string{"", "ab", "has space", "émilie", "a@b"}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"admin", "user"}
	if !IsInSlice("admin", slice) {
		t.Error("IsInSlice(admin) = false, want true")
	}
	if IsInSlice("owner", slice) {
		t.Error("IsInSlice(owner) = true, want false")
	}
	if IsInSlice("admin", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password is required"},
	}

	if got := errs.Error(); got != "username: username is required; password: password is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["username"] != "username is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
