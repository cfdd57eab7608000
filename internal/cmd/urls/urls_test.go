package urls

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/gifintext-go/internal/cmd/cmdutil"
	"github.com/riverfjs/gifintext-go/internal/config"
)

func settings(output string) *cmdutil.Settings {
	return &cmdutil.Settings{
		Config:  &config.Config{Label: "GIF", OutputFormat: output},
		NoColor: true,
	}
}

const input = "a ![GIF](https://g/1.gif?x=1&y=2) b ![GIF](https://g/2.gif)"

func TestRunURLs(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"plain", "plain", input, "https://g/1.gif?x=1&y=2\nhttps://g/2.gif\n"},
		{"json", "json", input, "[\n  \"https://g/1.gif?x=1&y=2\",\n  \"https://g/2.gif\"\n]\n"},
		{"table", "table", input, "#  URL\n1  https://g/1.gif?x=1&y=2\n2  https://g/2.gif\n"},
		{"json none", "json", "no gifs", "[]\n"},
		{"plain none", "plain", "no gifs", ""},
		{"table none", "table", "no gifs", "No GIF markers found.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runURLs(settings(tt.output), tt.input, &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
