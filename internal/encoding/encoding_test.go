package encoding

import (
	"bytes"
	"slices"
	"testing"
	"unicode/utf16"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		narrow []byte
		wide   []uint16
	}{
		{"empty", "", nil, nil},
		{"ascii", "abc", []byte("abc"), nil},
		{"latin1", "café", []byte{'c', 'a', 'f', 0xE9}, nil},
		{"nul", "a\x00b", []byte{'a', 0, 'b'}, nil},
		{"cjk", "a你", nil, []uint16{'a', 0x4F60}},
		{"latin1 then cjk", "é你", nil, []uint16{0xE9, 0x4F60}},
		{"astral", "😀", nil, []uint16{0xD83D, 0xDE00}},
		{"invalid utf8", "a\xffb", nil, []uint16{'a', 0xFFFD, 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			narrow, wide := Split(tt.in)
			if !bytes.Equal(narrow, tt.narrow) || (narrow == nil) != (tt.narrow == nil) {
				t.Errorf("narrow = %v, want %v", narrow, tt.narrow)
			}
			if !slices.Equal(wide, tt.wide) || (wide == nil) != (tt.wide == nil) {
				t.Errorf("wide = %v, want %v", wide, tt.wide)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "café crème", "ÿ\x00\x7f", "你好世界", "mixé 😀 text"} {
		narrow, wide := Split(s)
		var got string
		if wide != nil {
			got = WideString(wide)
		} else {
			got = NarrowString(narrow)
		}
		if got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}

func TestWideStringUnpaired(t *testing.T) {
	if got := WideString([]uint16{'a', 0xD800}); got != "a�" {
		t.Errorf("WideString(unpaired) = %q", got)
	}
}

func TestAppendUnitsLE(t *testing.T) {
	got := AppendUnitsLE([]byte{0xAA}, []uint16{0x0102, 0xFFFE})
	want := []byte{0xAA, 0x02, 0x01, 0xFE, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendUnitsLE = % X, want % X", got, want)
	}
	if got := AppendUnitsLE(nil, utf16.Encode([]rune("ab"))); !bytes.Equal(got, []byte{'a', 0, 'b', 0}) {
		t.Errorf("AppendUnitsLE(ab) = % X", got)
	}
}

func TestAppendLatin1LEMatchesWidened(t *testing.T) {
	narrow := []byte{'a', 0xE9, 0x00, 0xFF}
	wide := []uint16{'a', 0xE9, 0x00, 0xFF}
	if got, want := AppendLatin1LE(nil, narrow), AppendUnitsLE(nil, wide); !bytes.Equal(got, want) {
		t.Errorf("AppendLatin1LE = % X, want % X", got, want)
	}
}
