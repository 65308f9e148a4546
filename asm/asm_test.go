package asm

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	tables := []struct {
		name  string
		input string
		want  []byte
	}{
		{"single line", "\tdb 012H, 0ABH, 000H\n", []byte{0x12, 0xab, 0x00}},
		{"lower case", "db 0abh,0cdh", []byte{0xab, 0xcd}},
		{"label before marker", "tiles:\tdb 0FFH, 010H ; comment\n", []byte{0xff, 0x10}},
		{"no marker", "\tdw 0612H, 060FH\n", nil},
		{"multiple lines", "db 001H\r\n\nfoo\ndb 002H, 003H\n", []byte{0x01, 0x02, 0x03}},
		{"second marker ends data", "db 001H, 002H db 003H", []byte{0x01, 0x02}},
		{"no trailing newline", "db 07FH", []byte{0x7f}},
		{"empty", "", nil},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.want, DecodeString(table.input))
		})
	}
}

func TestDecodeTolerance(t *testing.T) {
	clean := DecodeString("db 012H, 0ABH, 000H")

	for _, noise := range []string{"0H", "abc", "NOTE", "LXYZ", "0ZZH", "   ", "$"} {
		t.Run(noise, func(t *testing.T) {
			got := DecodeString("db 012H, " + noise + ", 0ABH, 000H")
			assert.Equal(t, clean, got)
		})
	}
}

func TestDecodeLabelLikeToken(t *testing.T) {
	// Only characters 1 and 2 are read, so a label can still carry a byte
	assert.Equal(t, []byte{0x12, 0xab, 0x00}, DecodeString("db 012H, LABEL, 000H"))
}

func TestParseToken(t *testing.T) {
	b, ok := parseToken("  0C3H ")
	assert.True(t, ok)
	assert.Equal(t, byte(0xc3), b)

	_, ok = parseToken("0C3")
	assert.False(t, ok)

	_, ok = parseToken("0G3H")
	assert.False(t, ok)

	_, ok = parseToken("€aH")
	assert.False(t, ok)
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestDecodeError(t *testing.T) {
	_, err := Decode(failingReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errRead))
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tiles.inc")
	require.NoError(t, os.WriteFile(file, []byte(strings.Repeat("\tdb 011H, 022H\n", 3)), 0o644))

	b, err := DecodeFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x11, 0x22, 0x11, 0x22}, b)

	_, err = DecodeFile(filepath.Join(dir, "missing.inc"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
