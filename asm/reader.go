package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func hexValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// parseToken returns the byte held at character positions 1 and 2 of a
// trimmed token.
func parseToken(token string) (byte, bool) {
	t := strings.TrimSpace(token)
	if len(t) < minTokenLen {
		return 0, false
	}

	r := []rune(t)
	if len(r) < 3 {
		return 0, false
	}

	hi, ok := hexValue(r[1])
	if !ok {
		return 0, false
	}
	lo, ok := hexValue(r[2])
	if !ok {
		return 0, false
	}

	return hi<<4 | lo, true
}

// data returns the part of the line between the first marker and the next
// one, if any.
func data(line string) (string, bool) {
	parts := strings.SplitN(line, Marker, 3)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

type decoder struct {
	r   *bufio.Reader
	buf []byte
}

func (d *decoder) decodeLine(line string) {
	s, ok := data(line)
	if !ok {
		return
	}
	for _, token := range strings.Split(s, separator) {
		if b, ok := parseToken(token); ok {
			d.buf = append(d.buf, b)
		}
	}
}

func (d *decoder) decode(r io.Reader) error {
	d.r = bufio.NewReader(r)

	for {
		line, err := d.r.ReadString('\n')
		if len(line) > 0 {
			d.decodeLine(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Decode reads assembler source from r and returns the concatenation of every
// byte literal found after a "db " marker, in line then item order. Tokens
// that are too short or not hexadecimal are skipped.
func Decode(r io.Reader) ([]byte, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, fmt.Errorf("asm: %w", err)
	}
	return d.buf, nil
}

// DecodeString is like Decode but reads from s.
func DecodeString(s string) []byte {
	var d decoder
	// Reading from a strings.Reader cannot fail
	_ = d.decode(strings.NewReader(s))
	return d.buf
}

// DecodeFile opens and decodes the named file. A missing or unreadable file
// is returned as an error; callers treat it as fatal as there is nothing to
// render without it.
func DecodeFile(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("asm: %w", err)
	}
	defer f.Close()

	var d decoder
	if err := d.decode(f); err != nil {
		return nil, fmt.Errorf("asm: %s: %w", file, err)
	}
	return d.buf, nil
}
