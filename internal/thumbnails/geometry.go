package thumbnails

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSize = errors.New("thumbnails: size must be WxH")

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// ParseSize reads "WxH". Surrounding whitespace is ignored.
func ParseSize(value string) (Size, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	w, h, ok := strings.Cut(trimmed, "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width < 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height < 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	return Size{Width: width, Height: height}, nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether either side is missing.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Clip returns the box that fits inside both s and limit. Missing sides of
// limit do not constrain.
func (s Size) Clip(limit Size) Size {
	out := s
	if limit.Width > 0 && limit.Width < out.Width {
		out.Width = limit.Width
	}
	if limit.Height > 0 && limit.Height < out.Height {
		out.Height = limit.Height
	}
	return out
}

// Fit scales s proportionally so it fits inside frame. Sizes already inside
// the frame are returned unchanged unless upsample is set. Rounding is half
// up and no side drops below one pixel.
func (s Size) Fit(frame Size, upsample bool) Size {
	if s.IsZero() || frame.IsZero() {
		return s
	}
	if !upsample && s.Width <= frame.Width && s.Height <= frame.Height {
		return s
	}
	// width limits when s is relatively wider than the frame
	if s.Width*frame.Height >= s.Height*frame.Width {
		return Size{
			Width:  frame.Width,
			Height: atLeastOne(divRound(s.Height*frame.Width, s.Width)),
		}
	}
	return Size{
		Width:  atLeastOne(divRound(s.Width*frame.Height, s.Height)),
		Height: frame.Height,
	}
}

// ThumbnailSize computes the size of the editor thumbnail for a source image.
// With crop the source is first clipped to the requested box; the result is
// then fitted into frame.
func ThumbnailSize(source, requested Size, crop bool, frame Size) Size {
	box := source
	if crop {
		box = source.Clip(requested)
	}
	return box.Fit(frame, false)
}

func divRound(numerator, denominator int) int {
	return (2*numerator + denominator) / (2 * denominator)
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
