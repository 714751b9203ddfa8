// Package callback carries task identity through Telegram inline button
// callback data. A payload has the form "<action>|<token>", where the token
// is the percent-encoded task name truncated to fit the callback data limit.
package callback

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c must be percent-encoded. Unreserved
// characters and '/' are left as is.
func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '~', '/':
		return false
	}
	return true
}

func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// EncodeTask percent-encodes text and caps the result at maxBytes bytes.
// Characters are added whole: the output never ends in a partial escape
// sequence, so decoding it always yields a prefix of text.
func EncodeTask(text string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}

	out := make([]byte, 0, min(len(text)*3, maxBytes))
	var chunk []byte
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		chunk = appendEscaped(chunk[:0], text[i:i+size])
		if len(out)+len(chunk) > maxBytes {
			break
		}
		out = append(out, chunk...)
		i += size
	}
	return string(out)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeTask reverses EncodeTask. It is permissive: malformed escapes are
// kept verbatim and invalid UTF-8 is replaced with U+FFFD. '+' is not a space.
func DecodeTask(token string) string {
	if strings.IndexByte(token, '%') < 0 {
		return strings.ToValidUTF8(token, string(utf8.RuneError))
	}

	buf := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c == '%' && i+2 < len(token) {
			hi, okHi := unhex(token[i+1])
			lo, okLo := unhex(token[i+2])
			if okHi && okLo {
				buf = append(buf, hi<<4|lo)
				i += 2
				continue
			}
		}
		buf = append(buf, c)
	}
	return strings.ToValidUTF8(string(buf), string(utf8.RuneError))
}
