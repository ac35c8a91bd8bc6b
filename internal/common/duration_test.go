package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type serverTimeouts struct {
	Read  Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	Write Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
	Idle  Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`
}

func TestDuration_DecodeTimeouts(t *testing.T) {
	t.Parallel()

	want := serverTimeouts{
		Read:  NewDuration(10 * time.Second),
		Write: NewDuration(1500 * time.Millisecond),
		Idle:  NewDuration(time.Minute + 30*time.Second),
	}

	tests := []struct {
		name   string
		decode func([]byte, any) error
		input  string
	}{
		{
			name:   "yaml",
			decode: yaml.Unmarshal,
			input:  "read_timeout: 10s\nwrite_timeout: 1.5s\nidle_timeout: 1m30s\n",
		},
		{
			name:   "json",
			decode: json.Unmarshal,
			input:  `{"read_timeout":"10s","write_timeout":"1500ms","idle_timeout":"90s"}`,
		},
		{
			name:   "toml",
			decode: toml.Unmarshal,
			input:  "read_timeout = \"10s\"\nwrite_timeout = \"1.5s\"\nidle_timeout = \"1m30s\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got serverTimeouts
			require.NoError(t, tt.decode([]byte(tt.input), &got))
			require.Equal(t, want, got)
		})
	}
}

func TestDuration_RejectsBareNumbers(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"30", "", "10x", "1d"} {
		var d Duration
		err := d.UnmarshalText([]byte(input))
		require.ErrorContains(t, err, "invalid duration", "input %q", input)
	}

	var got serverTimeouts
	require.Error(t, json.Unmarshal([]byte(`{"read_timeout":30}`), &got), "numbers are not durations")
}

func TestDuration_MarshalText(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(serverTimeouts{Idle: NewDuration(90 * time.Second)})
	require.NoError(t, err)
	require.Contains(t, string(out), "idle_timeout: 1m30s")

	require.Equal(t, "Duration", NewDuration(0).JSONSchema().Title)
}
