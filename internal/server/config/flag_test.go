package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags set", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "15", "-o", "http://localhost:4200",
		}, expectPanic: false,
			expected: &Config{
				Addr:               "127.0.0.1:9090",
				DatabaseDSN:        "db",
				SecretKey:          "secret",
				TokenTTL:           15 * time.Minute,
				CORSAllowedOrigins: "http://localhost:4200",
			}},
		{name: "protect flag equals form", args: []string{"cmd", "-p=true", "-t", "30"},
			expectPanic: false,
			expected: &Config{
				ProtectBooks: true,
				TokenTTL:     30 * time.Minute,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
