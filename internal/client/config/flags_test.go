package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "Test1 OK",
			args: []string{"-model", "m1", "-timeout", "10", "-debounce", "200", "-store", "memory"},
			expected: &Config{
				TextModel:        "m1",
				RequestTimeout:   10 * time.Second,
				DebounceInterval: 200 * time.Millisecond,
				StoreDriver:      "memory",
			},
		},
		{
			name: "Test2 unknown flags are ignored",
			args: []string{"-c", "cfg.json", "-voice=Puck", "-verbose"},
			expected: &Config{
				Voice: "Puck",
			},
		},
		{name: "Test3 incorrect timeout", args: []string{"-timeout", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
