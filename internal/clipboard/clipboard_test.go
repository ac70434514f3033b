package clipboard

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"https://youtu.be/abc123", "https://youtu.be/abc123", nil},
		{"  https://youtu.be/abc123\r\n", "https://youtu.be/abc123", nil},
		{"\n\nhttps://youtu.be/x\nautre", "https://youtu.be/x", nil},
		{"", "", ErrEmpty},
		{" \t\n ", "", ErrEmpty},
	}
	for _, tc := range tests {
		got, err := normalize(tc.in)
		if !errors.Is(err, tc.err) || got != tc.want {
			t.Errorf("normalize(%q) = %q, %v; want %q, %v", tc.in, got, err, tc.want, tc.err)
		}
	}
}
