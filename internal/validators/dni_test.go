package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDNI(t *testing.T) {
	tests := []struct {
		dni  string
		want bool
	}{
		{"12345678Z", true},
		{"20572143T", true},
		{"50572123E", true},
		{"12345678z", true},
		{" 12345678Z ", true},

		{"12345678A", false},
		{"1234567Z", false},
		{"123456789Z", false},
		{"1234567AZ", false},
		{"", false},
		{"ZZZZZZZZZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.dni, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDNI(tt.dni))
		})
	}
}
