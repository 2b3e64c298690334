package vm

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ezrec/mipsim/asm"
)

// encoders maps payload encodings to their byte encoders.
// ASCII payloads are written as Latin-1, one byte per character.
var encoders = map[string]encoding.Encoding{
	"ASCII":    charmap.ISO8859_1,
	"latin1":   charmap.ISO8859_1,
	"UTF-8":    unicode.UTF8,
	"UTF-16LE": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// Encode renders a payload in its encoding. Characters the encoding
// cannot represent are replaced.
func Encode(payload asm.Payload) (data []byte, err error) {
	enc, ok := encoders[payload.Encoding]
	if !ok {
		err = asm.ErrEncodingInvalid(payload.Encoding)
		return
	}

	return encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(payload.Data))
}
