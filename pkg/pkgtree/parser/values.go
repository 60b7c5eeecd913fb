package parser

import (
	"strconv"
	"strings"

	"github.com/jamesainslie/pkgtree/pkg/pkgtree/scan"
	"github.com/jamesainslie/pkgtree/pkg/pkgtree/types"
)

// keyValue is one `key=value` field split on the first `=`, with the byte
// offsets of both halves preserved for diagnostics.
type keyValue struct {
	key    string
	value  string
	keyOff int
	valOff int
}

// splitKeyValue splits a field on its first `=`. It returns false when the
// field contains none.
func splitKeyValue(f scan.Field) (keyValue, bool) {
	i := strings.IndexByte(f.Text, '=')
	if i < 0 {
		return keyValue{}, false
	}
	return keyValue{
		key:    f.Text[:i],
		value:  f.Text[i+1:],
		keyOff: f.Offset,
		valOff: f.Offset + i + 1,
	}, true
}

// parseID parses a uid or gid value: a non-negative base-10 integer.
func parseID(kv keyValue, diags *collector) (uint64, bool) {
	id, err := strconv.ParseUint(kv.value, 10, 64)
	if err != nil {
		diags.record(types.InvalidNumber, kv.valOff, len(kv.value),
			"%s must be a non-negative base-10 integer, got %q", kv.key, kv.value)
		return 0, false
	}
	return id, true
}

// parseMode validates a mode value: 1-4 octal digits. The raw digit string
// is kept rather than the decoded integer so callers can round-trip the
// original text.
func parseMode(kv keyValue, diags *collector) (string, bool) {
	if !isOctalMode(kv.value) {
		diags.record(types.InvalidOctalMode, kv.valOff, len(kv.value),
			"mode must be 1-4 octal digits, got %q", kv.value)
		return "", false
	}
	return kv.value, true
}

func isOctalMode(s string) bool {
	if len(s) < 1 || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// parseType parses a path type value: one of dir, file, link.
func parseType(kv keyValue, diags *collector) (types.PathType, bool) {
	pt, err := types.ParsePathType(kv.value)
	if err != nil {
		diags.record(types.InvalidType, kv.valOff, len(kv.value),
			"type must be one of dir, file or link, got %q", kv.value)
		return "", false
	}
	return pt, true
}

// parseSize parses a size value: a non-negative base-10 byte count.
func parseSize(kv keyValue, diags *collector) (uint64, bool) {
	n, err := strconv.ParseUint(kv.value, 10, 64)
	if err != nil {
		diags.record(types.InvalidNumber, kv.valOff, len(kv.value),
			"size must be a non-negative base-10 integer, got %q", kv.value)
		return 0, false
	}
	return n, true
}

// sha256HexLen is the length of a hex-encoded SHA-256 digest.
const sha256HexLen = 64

// parseDigest validates a sha256digest value: exactly 64 hex characters.
func parseDigest(kv keyValue, diags *collector) (string, bool) {
	if len(kv.value) != sha256HexLen || !isHex(kv.value) {
		diags.record(types.InvalidDigestLength, kv.valOff, len(kv.value),
			"sha256digest must be %d hex characters, got %d", sha256HexLen, len(kv.value))
		return "", false
	}
	return kv.value, true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// parseTime parses a time value. The format stores epoch seconds with a
// mandatory fractional suffix ("1672531200.0"); the fraction is parsed and
// discarded, only whole seconds are kept.
func parseTime(kv keyValue, diags *collector) (int64, bool) {
	secsPart, fracPart, found := strings.Cut(kv.value, ".")
	if !found || !isDigits(fracPart) {
		diags.record(types.InvalidNumber, kv.valOff, len(kv.value),
			"time must be epoch seconds with a fractional suffix, got %q", kv.value)
		return 0, false
	}
	secs, err := strconv.ParseUint(secsPart, 10, 63)
	if err != nil {
		diags.record(types.InvalidNumber, kv.valOff, len(kv.value),
			"time must be epoch seconds with a fractional suffix, got %q", kv.value)
		return 0, false
	}
	return int64(secs), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
