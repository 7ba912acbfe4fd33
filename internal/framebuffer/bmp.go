package framebuffer

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// WriteBMP encodes the buffer as an 8-bit paletted BMP.
func (f *Framebuffer) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, f.Image()); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

// SaveBMP writes the buffer to path as a BMP file.
func (f *Framebuffer) SaveBMP(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := f.WriteBMP(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
