// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tag

import "testing"

func TestParseValidTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tag
	}{
		{"bare tag", "#U8I9E3D4h", Tag{8, 9, 3, 4}},
		{"tag inside text", "Plan review #U7I8E6D2h", Tag{7, 8, 6, 2}},
		{"multi-digit values", "#U10I12E0D16h", Tag{10, 12, 0, 16}},
		{"first of two tags wins", "#U1I2E3D4h and #U5I6E7D8h", Tag{1, 2, 3, 4}},
		{"trailing text", "#U2I2E2D2h call the bank", Tag{2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			if !ok {
				t.Fatalf("Parse(%q) reported no tag", tt.text)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseNoTag(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain text", "Lunch with Sam"},
		{"lowercase letters", "#u8i9e3d4h"},
		{"uppercase hour marker", "#U8I9E3D4H"},
		{"missing hash", "U8I9E3D4h"},
		{"missing digits", "#UIE D h"},
		{"wrong letter order", "#I8U9E3D4h"},
		{"truncated", "#U8I9E3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			if ok {
				t.Errorf("Parse(%q) = %+v, want no tag", tt.text, got)
			}
			if got != (Tag{}) {
				t.Errorf("Parse(%q) returned non-zero tag %+v without a match", tt.text, got)
			}
		})
	}
}
