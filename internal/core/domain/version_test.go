package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/core/domain"
)

func TestSupportsUIDs(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
	}{
		{"4.4.1.stable", true},
		{"4.3.0.stable", false},
		{"5.0.0.stable", true},
		{"4.4.stable.official.4c311cbee", true},
		{"4.10.0.stable", true},
		{"3.6.stable", false},
		{"  4.5.dev3\n", true},
		{"Godot Engine v4.4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.SupportsUIDs(tt.version))
		})
	}
}

func TestParseEngineVersion(t *testing.T) {
	v, ok := domain.ParseEngineVersion("4.4.1.stable.official\n")
	require.True(t, ok)
	assert.Equal(t, 4, v.Major)
	assert.Equal(t, 4, v.Minor)
	assert.Equal(t, "4.4.1.stable.official", v.Raw)

	_, ok = domain.ParseEngineVersion("stable")
	assert.False(t, ok)
}
