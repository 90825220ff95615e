package models

import "testing"

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{"admin user", &User{Role: RoleAdmin}, true},
		{"visitor", &User{Role: RoleVisitor}, false},
		{"empty role", &User{}, false},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsAdmin(); got != tt.expected {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUser_Identity(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected string
	}{
		{"signed in", &User{Email: "alice@example.com"}, "alice@example.com"},
		{"signed in without email", &User{Sub: "abc123"}, AnonymousSubmitter},
		{"nil user", nil, AnonymousSubmitter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Identity(); got != tt.expected {
				t.Errorf("Identity() = %q, want %q", got, tt.expected)
			}
		})
	}
}
