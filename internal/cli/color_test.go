package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHelpersKeepText(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
	}{
		{"Primary", Primary, "38h 30m"},
		{"Error", Error, "error: entry not found"},
		{"Warning", Warning, "-137h 00m"},
		{"Info", Info, "Mo 06.01. is a public holiday"},
		{"Silent", Silent, "a1b2c3d4"},
		{"header", func(s string) string { return headerStyle.Render(s) }, "Stundenzettel Jänner 2025"},
		{"footer", func(s string) string { return footerStyle.Render(s) }, "q quit"},
		{"selected", func(s string) string { return selectedStyle.Render(s) }, "KW 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.fn(tt.in), tt.in)
		})
	}
}
