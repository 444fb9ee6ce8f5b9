package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at path into tightly packed RGBA8 pixels.
// When flip is set the rows are reversed so the first row is the bottom of
// the picture, which is what OpenGL expects for 2D texture coordinates.
func LoadImage(path string, flip bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "read", Path: path, Err: err}
	}
	defer file.Close()

	if fi, err := file.Stat(); err == nil && fi.IsDir() {
		return nil, &ResourceError{Op: "read", Path: path, Err: os.ErrNotExist}
	}

	raw, _, err := image.Decode(file)
	if err != nil {
		return nil, &ResourceError{Op: "decode", Path: path, Err: err}
	}

	bounds := raw.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), raw, bounds.Min, draw.Src)

	if flip {
		FlipVertical(rgba)
	}
	return rgba, nil
}

// FlipVertical reverses the row order of img in place. Only the pixels inside
// img.Rect are touched, so sub-images of a larger picture are safe.
func FlipVertical(img *image.RGBA) {
	r := img.Rect
	width := r.Dx() * 4
	row := make([]byte, width)
	for top, bottom := r.Min.Y, r.Max.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[img.PixOffset(r.Min.X, top):][:width]
		b := img.Pix[img.PixOffset(r.Min.X, bottom):][:width]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// SkyboxFaceNames are the cube map faces in +X, -X, +Y, -Y, +Z, -Z order
var SkyboxFaceNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// SkyboxFaces returns the six face image paths inside dir
func SkyboxFaces(dir, ext string) [6]string {
	var faces [6]string
	for i, name := range SkyboxFaceNames {
		faces[i] = filepath.Join(dir, fmt.Sprintf("%s%s", name, ext))
	}
	return faces
}
