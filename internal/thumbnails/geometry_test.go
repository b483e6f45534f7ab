package thumbnails

import (
	"errors"
	"testing"
)

var editorFrame = Size{Width: 111, Height: 93}

func TestThumbnailSizeWorkedCases(t *testing.T) {
	cases := []struct {
		name      string
		source    Size
		requested string
		crop      bool
		want      string
	}{
		{name: "portrait cropped", source: Size{140, 169}, requested: "250x250", crop: true, want: "77x93"},
		{name: "portrait resized", source: Size{140, 169}, requested: "250x250", want: "77x93"},
		{name: "panorama cropped", source: Size{300, 50}, requested: "225x175", crop: true, want: "111x25"},
		{name: "panorama resized", source: Size{300, 50}, requested: "225x175", want: "111x19"},
		{name: "small source not upscaled", source: Size{40, 30}, requested: "250x250", want: "40x30"},
		{name: "square", source: Size{1000, 1000}, requested: "", want: "93x93"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var requested Size
			if tc.requested != "" {
				var err error
				requested, err = ParseSize(tc.requested)
				if err != nil {
					t.Fatalf("parse size: %v", err)
				}
			}
			got := ThumbnailSize(tc.source, requested, tc.crop, editorFrame)
			if got.String() != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
			if again := ThumbnailSize(tc.source, requested, tc.crop, editorFrame); again != got {
				t.Fatalf("expected deterministic result, got %s then %s", got, again)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	size, err := ParseSize(" 225X175 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if size != (Size{225, 175}) {
		t.Fatalf("unexpected size %v", size)
	}
	for _, bad := range []string{"", "225", "axb", "10x-1"} {
		if _, err := ParseSize(bad); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("expected ErrInvalidSize for %q got %v", bad, err)
		}
	}
}

func TestFitUpsample(t *testing.T) {
	got := Size{40, 30}.Fit(editorFrame, true)
	if got.String() != "111x83" {
		t.Fatalf("expected 111x83 got %s", got)
	}
}
