package slbuild

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"
)

// ReadASCII reads the named file from fsys and returns its contents as a string.
// Files containing bytes outside the 7-bit ASCII range are rejected.
// Carriage returns of CRLF line endings are dropped so reflowed output stays consistent.
func ReadASCII(fsys fs.FS, name string) (string, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	for i, c := range src {
		if c >= utf8.RuneSelf {
			return "", fmt.Errorf("%s: byte 0x%x at offset %d: %w", name, c, i, ErrNonASCII)
		}
	}
	return strings.ReplaceAll(string(src), "\r\n", "\n"), nil
}
