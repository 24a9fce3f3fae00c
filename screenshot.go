package mural

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the composition, taken at the
// end of the current frame's Draw. The resulting PNG is written to
// ScreenshotDir with a timestamped filename. I/O failures are logged to
// stderr, never fatal. A no-op after Destroy (nothing is drawn, so
// there is nothing to capture).
func (c *Composition) Screenshot(label string) {
	if c.destroyed {
		return
	}
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
// Called at the end of Draw. The frame is read back once and shared by
// all captures; each capture gets its own millisecond timestamp so two
// labels queued in the same frame never collide on disk.
func (c *Composition) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	queue := c.screenshotQueue
	c.screenshotQueue = c.screenshotQueue[:0]

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[mural] screenshot: mkdir %s: %v\n", c.ScreenshotDir, err)
		return
	}

	img := straightAlpha(screen)
	for _, label := range queue {
		path := filepath.Join(c.ScreenshotDir, captureName(label, time.Now()))
		if err := savePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[mural] screenshot: %v\n", err)
		}
	}
}

// straightAlpha reads the frame back from the GPU and converts its
// premultiplied pixels to straight-alpha NRGBA for PNG encoding.
func straightAlpha(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// captureName builds the file name for one capture: the sanitized
// label first, then the capture time down to milliseconds.
func captureName(label string, at time.Time) string {
	return fmt.Sprintf("%s_%s.png", sanitizeLabel(label), at.Format("20060102_150405.000"))
}

// savePNG encodes an image to a PNG file at the given path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
