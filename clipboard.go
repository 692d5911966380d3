package xfab

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// Copy buffers travel through the host clipboard as text: the flattened
// integer sequence packed little-endian and base64 encoded under a fixed
// prefix.
const clipboardPrefix = "xfab:"

var errClipboardFormat = errors.New("xfab: clipboard does not hold a copy buffer")

func encodeClipboard(vec []uint32) string {
	b := make([]byte, 0, len(vec)*4)
	for _, v := range vec {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return clipboardPrefix + base64.StdEncoding.EncodeToString(b)
}

func decodeClipboard(s string) ([]uint32, error) {
	if !strings.HasPrefix(s, clipboardPrefix) {
		return nil, errClipboardFormat
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, clipboardPrefix))
	if err != nil {
		return nil, errClipboardFormat
	}
	if len(b)%4 != 0 {
		return nil, errClipboardFormat
	}
	vec := make([]uint32, len(b)/4)
	for i := range vec {
		vec[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return vec, nil
}

// WriteClipboard places a copy buffer on the system clipboard.
func WriteClipboard(tc *TileCopy) error {
	return clipboard.WriteAll(encodeClipboard(tc.ToVec()))
}

// ReadClipboard retrieves a copy buffer from the system clipboard, or
// fails if the clipboard holds something else.
func ReadClipboard() (*TileCopy, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	vec, err := decodeClipboard(s)
	if err != nil {
		return nil, err
	}
	return TileCopyFromVec(vec)
}
