// Package bioscreen holds file-boundary helpers shared by the bioscreen
// command line tools: text decoding for native instrument exports, delimiter
// detection for delimited exports, and path expansion.
package bioscreen

import (
	"io"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Recognized values for the input-encoding option. Native .bsm exports from
// the Bioscreen instrument are UTF-16 little-endian; plain .csv exports are
// byte-oriented.
const (
	EncodingUTF16LE = "utf-16le"
	EncodingUTF8    = "utf-8"
	EncodingNone    = "none"
)

// DecodeReader wraps r so that reads yield UTF-8 text, decoding from the
// named source encoding. EncodingUTF8 and EncodingNone pass the reader
// through untouched.
func DecodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case EncodingUTF16LE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(r, dec), nil
	case EncodingUTF8, EncodingNone, "":
		return r, nil
	}

	return nil, pfx.Err(ErrUnknownEncoding{Encoding: encoding})
}

// ErrUnknownEncoding indicates an input-encoding name outside the recognized
// set.
type ErrUnknownEncoding struct {
	Encoding string
}

func (e ErrUnknownEncoding) Error() string {
	return "unknown input encoding: " + e.Encoding
}

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. If no delimiter can be
// sniffed, it falls back to a comma.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}
