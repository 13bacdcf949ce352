package auth

import "testing"

func TestStaticAuthenticator(t *testing.T) {
	a := NewStaticAuthenticator("admin", "admin123")

	tests := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{"correct credentials", "admin", "admin123", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "admin123", false},
		{"both wrong", "root", "wrong", false},
		{"empty credentials", "", "", false},
		{"swapped credentials", "admin123", "admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Authenticate(tt.username, tt.password); got != tt.expected {
				t.Errorf("Authenticate(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.expected)
			}
		})
	}
}
