// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package texpat

import (
	"reflect"
	"testing"
)

func collect(t *testing.T, src string) []string {
	t.Helper()

	var got []string
	err := Parse([]byte(src), func(pat []byte) bool {
		got = append(got, string(pat))
		return true
	})
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return got
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "single block",
			src:  `\patterns{ 1a 2b1c }`,
			want: []string{"1a", "2b1c"},
		},
		{
			name: "line comment before block",
			src:  "% a file header\n" + `\patterns{1a}`,
			want: []string{"1a"},
		},
		{
			name: "comment inside block",
			src: `\patterns{
				1a % trailing remark
				2b
			}`,
			want: []string{"1a", "2b"},
		},
		{
			name: "two blocks",
			src:  `\patterns{1a} some text \patterns{2b}`,
			want: []string{"1a", "2b"},
		},
		{
			name: "ignores prose outside block",
			src:  `this is not \relevant at all`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseUnterminatedBlock(t *testing.T) {
	err := Parse([]byte(`\patterns{1a 2b`), func([]byte) bool { return true })
	if err == nil {
		t.Fatal("Parse on an unterminated block should return an error")
	}
	if _, ok := Reason(err); !ok {
		t.Errorf("error %v is not a malformed-input error", err)
	}
}

func TestParseStopsOnFalseYield(t *testing.T) {
	var got []string
	err := Parse([]byte(`\patterns{1a 2b 3c}`), func(pat []byte) bool {
		got = append(got, string(pat))
		return len(got) < 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"1a", "2b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
