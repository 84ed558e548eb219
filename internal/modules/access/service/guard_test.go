package service

import "testing"

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		allowList []string
		want      bool
	}{
		{"empty list allows all", "anything", nil, true},
		{"blank entries count as empty", "anything", []string{" ", ""}, true},
		{"wildcard allows all", "xyz", []string{"*"}, true},
		{"wildcard with spaces", "xyz", []string{" * "}, true},
		{"separator insensitive", "a-b-c", []string{"abc"}, true},
		{"separator insensitive in list", "abc", []string{"a-b-c"}, true},
		{"dashed uuid", "1f2e3d4c-5b6a-7980-1a2b-3c4d5e6f7a8b", []string{"1f2e3d4c5b6a79801a2b3c4d5e6f7a8b"}, true},
		{"denied", "xyz", []string{"abc"}, false},
		{"wildcard among others is literal", "xyz", []string{"*", "abc"}, false},
		{"empty request denied with list", "", []string{"abc"}, false},
	}

	for _, tt := range tests {
		got := IsAllowed(tt.requested, tt.allowList)
		if got != tt.want {
			t.Errorf("%s: IsAllowed(%q, %q) = %v, want %v", tt.name, tt.requested, tt.allowList, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a-b-c", "abc"},
		{" abc\n", "abc"},
		{"a_b c", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGuard(t *testing.T) {
	g := New([]string{"ab-cd", " ef "})
	if !g.IsAllowed("abcd") {
		t.Error("expected abcd to be allowed")
	}
	if g.IsAllowed("zz") {
		t.Error("expected zz to be denied")
	}
	if g.AllowsAny() {
		t.Error("guard with explicit ids should not allow any")
	}
	list := g.AllowList()
	if len(list) != 2 || list[0] != "abcd" || list[1] != "ef" {
		t.Errorf("AllowList() = %q", list)
	}
}
