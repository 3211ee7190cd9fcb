package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "keeps only owned flags",
			args:         []string{"-a", ":50051", "-z", "noise", "-e", "http://127.0.0.1:9000/"},
			allowedFlags: []string{"-a", "-e"},
			want:         []string{"-a", ":50051", "-e", "http://127.0.0.1:9000/"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=travel.json", "-m", "20"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=travel.json"},
		},
		{
			name:         "value starting with dash is not consumed",
			args:         []string{"-d", "-a", ":50051"},
			allowedFlags: []string{"-d", "-a"},
			want:         []string{"-d", "-a", ":50051"},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-b"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "leftover"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-c", "base.json", "-c", "override.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "base.json", "-c", "override.json"},
		},
		{
			name:         "empty input",
			args:         []string{},
			allowedFlags: []string{"-a", "-e"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short form", []string{"testbin", "-c", "/etc/travelpath.json"}, "/etc/travelpath.json"},
		{"long form", []string{"testbin", "-config", "dev.json"}, "dev.json"},
		{"absent", []string{"testbin", "-a", ":50051"}, ""},
		{"last one wins", []string{"testbin", "-c", "a.json", "-config", "b.json"}, "b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
