package collect

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// decodeText interprets raw file bytes as UTF-8 text. A NUL byte or an
// invalid UTF-8 sequence counts as a decode failure, so binary content ends
// up on the placeholder path instead of being copied into the artifact.
func decodeText(data []byte) (string, error) {
	if bytes.IndexByte(data, 0) >= 0 {
		return "", errors.New("content contains NUL bytes")
	}
	if !utf8.Valid(data) {
		return "", errors.New("content is not valid UTF-8")
	}
	return string(data), nil
}
