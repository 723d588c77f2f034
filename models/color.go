package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Color is a Discord embed colour. The zero value is the invalid colour that
// a malformed hex string parses to; it is sent as JSON null and left for
// Discord to ignore.
type Color struct {
	value int64
	valid bool
}

// RGB returns a valid colour for v.
func RGB(v int64) Color {
	return Color{value: v, valid: true}
}

// ParseHexColor parses s the way a lenient hex reader does: surrounding
// whitespace is ignored, an optional sign and 0x prefix are accepted, and
// parsing stops at the first non-hex character. The first '#' anywhere in s
// is removed beforehand. A string with no leading hex digits yields the
// invalid colour. So does one that overflows int64, where a float-based
// reader would return a huge number; no such value is a usable RGB colour.
func ParseHexColor(s string) Color {
	s = strings.TrimSpace(strings.Replace(s, "#", "", 1))

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return Color{}
	}

	v, err := strconv.ParseInt(s[:end], 16, 64)
	if err != nil {
		return Color{}
	}
	if neg {
		v = -v
	}
	return RGB(v)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Value returns the numeric colour and whether it is valid.
func (c Color) Value() (int64, bool) {
	return c.value, c.valid
}

// Valid reports whether c holds a parsed colour.
func (c Color) Valid() bool { return c.valid }

// Hex renders c as #rrggbb, or the empty string when invalid.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	return fmt.Sprintf("#%06x", c.value&0xffffff)
}

func (c Color) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, c.value, 10), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Color{}
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decoding colour %s: %w", data, err)
	}
	*c = RGB(v)
	return nil
}
