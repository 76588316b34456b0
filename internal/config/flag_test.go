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

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-d", "cookbook.db", "-p", "admin_pw", "-s", "secret",
			"-t", "48", "-f", ".session", "-u", "user", "-w", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		}, expectPanic: false,
			expected: &Config{
				DatabaseDSN:          "cookbook.db",
				AdminPassword:        "admin_pw",
				SessionSecret:        "secret",
				SessionTokenValidity: 48 * time.Hour,
				SessionFile:          ".session",
				S3RootUser:           "user",
				S3RootPassword:       "password",
				S3Bucket:             "bucket",
				S3Region:             "us-west-1",
				S3BaseEndpoint:       "http://endpoint",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

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
