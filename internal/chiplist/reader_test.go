package chiplist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "header and padded entries",
			input: "Microchip\n111\n 222 \n333\n",
			want:  []string{"111", "222", "333"},
		},
		{
			name:  "no header",
			input: "941000024681357\n941000024681358",
			want:  []string{"941000024681357", "941000024681358"},
		},
		{
			name:  "crlf line endings",
			input: "Microchip number\r\n111\r\n222\r\n",
			want:  []string{"111", "222"},
		},
		{
			name:  "blank line passes through",
			input: "Microchip\n111\n\n222\n",
			want:  []string{"111", "", "222"},
		},
		{
			name:  "indented header is not a header",
			input: " Microchip\n111\n",
			want:  []string{"Microchip", "111"},
		},
		{
			name:  "header marker anywhere in file",
			input: "111\nMicrochip\n222\n",
			want:  []string{"111", "222"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chips.txt")
	require.NoError(t, os.WriteFile(path, []byte("Microchip\n111\n 222 \n333\n"), 0o600))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222", "333"}, got)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
