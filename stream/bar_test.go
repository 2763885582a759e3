package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var black = colorful.Color{}

func TestBarFraction(t *testing.T) {
	b := NewBar(10, 0, 100, DefaultGradient(), black)
	tests := []struct{ value, want float64 }{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{-20, 0},
		{150, 1},
	}
	for _, tt := range tests {
		if got := b.Fraction(tt.value); got != tt.want {
			t.Errorf("Fraction(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	reversed := NewBar(10, 100, 0, DefaultGradient(), black)
	if got := reversed.Fraction(100); got != 0 {
		t.Errorf("reversed Fraction(100) = %v, want 0", got)
	}
	if got := reversed.Fraction(25); got != 0.75 {
		t.Errorf("reversed Fraction(25) = %v, want 0.75", got)
	}

	flat := NewBar(10, 5, 5, DefaultGradient(), black)
	if flat.Fraction(4) != 0 || flat.Fraction(5) != 1 {
		t.Error("flat bar should be empty below and full at its endpoint")
	}
}

func TestBarEmptyAndFull(t *testing.T) {
	b := NewBar(8, 0, 100, DefaultGradient(), black)
	b.SetGlow(3)

	empty := b.CalculateFrame(0)
	for i := 0; i < empty.Len(); i++ {
		if empty.Pixel(i) != black {
			t.Fatalf("empty bar pixel %d = %v, want background", i, empty.Pixel(i))
		}
	}

	full := b.CalculateFrame(100)
	for i := 0; i < full.Len(); i++ {
		if full.Pixel(i) != b.colourAt(i) {
			t.Fatalf("full bar pixel %d = %v, want %v", i, full.Pixel(i), b.colourAt(i))
		}
	}
}

func TestBarHalfWithGlow(t *testing.T) {
	b := NewBar(10, 0, 100, DefaultGradient(), black)
	b.SetGlow(2)

	f := b.CalculateFrame(50)
	for i := 0; i < 5; i++ {
		if f.Pixel(i) != b.colourAt(i) {
			t.Errorf("pixel %d should be lit", i)
		}
	}
	for i := 5; i < 7; i++ {
		if f.Pixel(i) == black || f.Pixel(i) == b.colourAt(i) {
			t.Errorf("pixel %d should glow, got %v", i, f.Pixel(i))
		}
	}
	for i := 7; i < 10; i++ {
		if f.Pixel(i) != black {
			t.Errorf("pixel %d should be background, got %v", i, f.Pixel(i))
		}
	}
}

func TestBarPartialEdge(t *testing.T) {
	b := NewBar(10, 0, 100, DefaultGradient(), black)

	f := b.CalculateFrame(55)
	if f.Pixel(4) != b.colourAt(4) {
		t.Error("pixel 4 should be lit")
	}
	if edge := f.Pixel(5); edge == black || edge == b.colourAt(5) {
		t.Errorf("edge pixel should be blended, got %v", edge)
	}
	if f.Pixel(6) != black {
		t.Error("pixel 6 should be background without glow")
	}
}

func TestNewBarFromConfig(t *testing.T) {
	c := DefaultConfig()
	c.Strip.Pixels = 20
	b, err := NewBarFromConfig(c)
	if err != nil {
		t.Fatalf("NewBarFromConfig: %v", err)
	}
	if got := b.CalculateFrame(100).Len(); got != 20 {
		t.Errorf("frame length = %d, want 20", got)
	}
	if len(b.glow) != c.Strip.Glow {
		t.Errorf("glow length = %d, want %d", len(b.glow), c.Strip.Glow)
	}

	c.Strip.Background = "not-a-colour"
	if _, err := NewBarFromConfig(c); err == nil {
		t.Error("expected error for bad background")
	}
}

func TestNewRenderer(t *testing.T) {
	c := DefaultConfig()
	r, err := NewRenderer(c)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, ok := r.(*Bar); !ok {
		t.Errorf("default renderer = %T, want *Bar", r)
	}

	c.Strip.Renderer = "trail"
	r, err = NewRenderer(c)
	if err != nil {
		t.Fatalf("NewRenderer(trail): %v", err)
	}
	if f := r.CalculateFrame(50); f.Len() != c.Strip.Pixels {
		t.Errorf("trail frame has %d pixels, want %d", f.Len(), c.Strip.Pixels)
	}

	c.Strip.Renderer = "sparkle"
	if _, err := NewRenderer(c); err == nil {
		t.Error("unknown renderer should fail")
	}
}

func TestGradientTrailSlidesWithValue(t *testing.T) {
	g := NewGradientTrail(10, DefaultGradient(), 10, 0, 100)
	start := g.CalculateFrame(0)
	end := g.CalculateFrame(100)
	half := g.CalculateFrame(50)
	for i := 0; i < 10; i++ {
		if start.Pixel(i) != end.Pixel(i) {
			t.Errorf("pixel %d differs after a full trail length", i)
		}
	}
	if half.Pixel(5) != start.Pixel(0) {
		t.Errorf("half-way frame should shift the trail by 5 pixels")
	}
}
