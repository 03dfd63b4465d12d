package domain

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user UserInfo
		want string
	}{
		{"first and last", UserInfo{FirstName: "Ana", LastName: "Li"}, "Ana Li"},
		{"first only", UserInfo{FirstName: "Ana"}, "Ana"},
		{"last only", UserInfo{LastName: "Li"}, "Li"},
		{"padded parts", UserInfo{FirstName: " Ana ", LastName: " Li "}, "Ana Li"},
		{"username fallback", UserInfo{Username: "ana"}, "@ana"},
		{"blank names fall through", UserInfo{FirstName: "  ", Username: "ana"}, "@ana"},
		{"empty record", UserInfo{}, "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.DisplayName(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
