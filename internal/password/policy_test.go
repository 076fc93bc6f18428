package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	p := NewDefaultPolicy()

	tests := []struct {
		name     string
		password string
		username string
		email    string
		want     []string
	}{
		{
			name:     "acceptable password",
			password: "Secur3!pass",
			username: "alice",
			email:    "alice@example.com",
		},
		{
			name:     "too short",
			password: "abc1!",
			username: "alice",
			email:    "alice@example.com",
			want:     []string{"This password is too short. It must contain at least 8 characters."},
		},
		{
			name:     "entirely numeric",
			password: "1029384756",
			username: "alice",
			email:    "alice@example.com",
			want:     []string{"This password is entirely numeric."},
		},
		{
			name:     "common password",
			password: "password1",
			username: "alice",
			email:    "alice@example.com",
			want:     []string{"This password is too common."},
		},
		{
			name:     "contains username",
			password: "xXalbertsenXx",
			username: "albertsen",
			email:    "a@example.com",
			want:     []string{"The password is too similar to the username."},
		},
		{
			name:     "contains email local part",
			password: "doctorbob2000",
			username: "bob",
			email:    "doctorbob@example.com",
			want:     []string{"The password is too similar to the email address."},
		},
		{
			name:     "short username is not flagged",
			password: "xyzab12!",
			username: "ab",
			email:    "ab@example.com",
		},
		{
			name:     "short and numeric reported together",
			password: "12345",
			username: "alice",
			email:    "alice@example.com",
			want: []string{
				"This password is too short. It must contain at least 8 characters.",
				"This password is entirely numeric.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Validate(tt.password, tt.username, tt.email)
			assert.Equal(t, tt.want, got)
		})
	}
}
