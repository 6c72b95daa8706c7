package domain

import "testing"

func TestUserID(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
	}{
		{"registry login", "SK12345", "12345"},
		{"short numeric", "SK1", "1"},
		{"prefix only", "SK", ""},
		{"single char", "S", ""},
		{"empty", "", ""},
		{"multibyte prefix", "ŠK777", "777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserID(tt.username); got != tt.want {
				t.Errorf("UserID(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}
