package tokenize

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var charsets = map[string]encoding.Encoding{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"shift_jis":    japanese.ShiftJIS,
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// Decode converts data from charset to UTF-8. An empty charset, "utf-8" and
// "utf8" return data unchanged.
func Decode(data []byte, charset string) ([]byte, error) {
	switch cs := strings.ToLower(charset); cs {
	case "", "utf-8", "utf8":
		return data, nil
	default:
		enc, ok := charsets[cs]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, charset)
		}
		return enc.NewDecoder().Bytes(data)
	}
}
