package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an LED strip.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a Frame of n black pixels.
func NewFrame(n int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, n)
	return f
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// MarshalBinary converts a Frame into a little-endian pixel count followed
// by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("frame has %d pixels, at most %d fit", len(f.pixels), math.MaxUint16)
	}
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
