package http

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single origin",
			input: "https://app.example.com",
			want:  []string{"https://app.example.com"},
		},
		{
			name:  "multiple origins with whitespace",
			input: "https://app.example.com, https://admin.example.com ,https://shop.example.com",
			want:  []string{"https://app.example.com", "https://admin.example.com", "https://shop.example.com"},
		},
		{
			name:  "only commas",
			input: ",,,",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	assert.Nil(t, createCORSMiddleware(true, "", logger))
	assert.Nil(t, createCORSMiddleware(true, " , ", logger))
	assert.NotNil(t, createCORSMiddleware(true, "https://app.example.com", logger))
}
