package bioscreen

import (
	"io"
	"strings"
	"testing"
)

func TestDecodeReaderUTF16LE(t *testing.T) {
	const text = "Time,1,2\n"

	encoded := make([]byte, 0, 2*len(text))
	for _, b := range []byte(text) {
		encoded = append(encoded, b, 0x00)
	}

	r, err := DecodeReader(strings.NewReader(string(encoded)), EncodingUTF16LE)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if string(decoded) != text {
		t.Fatalf("decoded %q, want %q", decoded, text)
	}
}

func TestDecodeReaderPassthrough(t *testing.T) {
	for _, encoding := range []string{EncodingUTF8, EncodingNone, ""} {
		r, err := DecodeReader(strings.NewReader("abc"), encoding)
		if err != nil {
			t.Fatalf("%q: %v", encoding, err)
		}

		got, _ := io.ReadAll(r)
		if string(got) != "abc" {
			t.Fatalf("%q: decoded %q", encoding, got)
		}
	}

	if _, err := DecodeReader(strings.NewReader(""), "ebcdic"); err == nil {
		t.Fatal("expected an error for an unknown encoding")
	}
}

func TestDetermineDelimiter(t *testing.T) {
	tabbed := "a\tb\tc\n1\t2\t3\n4\t5\t6\n"
	if got := DetermineDelimiter(strings.NewReader(tabbed)); got != '\t' {
		t.Fatalf("got %q, want tab", got)
	}

	comma := "a,b,c\n1,2,3\n4,5,6\n"
	if got := DetermineDelimiter(strings.NewReader(comma)); got != ',' {
		t.Fatalf("got %q, want comma", got)
	}
}
