package config

import (
	"flag"
	"os"
	"testing"
	"time"

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
			"-a", "127.0.0.1:9090", "-l", "127.0.0.1:8081", "-d", "db", "-s", "secret",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-m", "10", "-q", "http://places", "-k", "apikey", "-t", "6", "-n", "5",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:    "127.0.0.1:9090",
				EndpointAddrHTTP:    "127.0.0.1:8081",
				DatabaseDSN:         "db",
				SecretKey:           "secret",
				S3RootUser:          "user",
				S3RootPassword:      "password",
				S3Bucket:            "bucket",
				S3Region:            "us-west-1",
				S3BaseEndpoint:      "http://endpoint",
				MaxPhotoBytes:       10 << 20,
				PlacesEndpoint:      "http://places",
				PlacesAPIKey:        "apikey",
				DailyTimeBudget:     6 * time.Hour,
				MinViableCandidates: 5,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
