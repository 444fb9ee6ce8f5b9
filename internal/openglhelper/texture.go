package openglhelper

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/learngl/pkg/assets"
)

// Texture is a 2D or cube map texture object
type Texture struct {
	ID     uint32
	Target uint32 // GL_TEXTURE_2D or GL_TEXTURE_CUBE_MAP
}

// NewTexture2D loads the image at path, flipped so that row 0 is the bottom,
// into a mipmapped RGBA texture.
//
// The texture object is always created. When the image cannot be loaded it is
// left without storage and the load error is returned for logging.
func NewTexture2D(path string) (*Texture, error) {
	img, err := assets.LoadImage(path, true)

	tex := newTexture(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if img != nil {
		uploadImage(gl.TEXTURE_2D, img)
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	return tex, err
}

// NewCubemap loads six face images, in +X, -X, +Y, -Y, +Z, -Z order, into a
// cube map texture. Faces are not flipped.
//
// Faces that fail to load are skipped; their errors are joined and returned.
func NewCubemap(faces [6]string) (*Texture, error) {
	tex := newTexture(gl.TEXTURE_CUBE_MAP)

	var errs []error
	for i, path := range faces {
		img, err := assets.LoadImage(path, false)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		uploadImage(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), img)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return tex, errors.Join(errs...)
}

// NewAlpha8Texture creates a single channel texture from raw pixels
func NewAlpha8Texture(width, height int, pixels *uint8) *Texture {
	tex := newTexture(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	return tex
}

func newTexture(target uint32) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(target, id)
	return &Texture{ID: id, Target: target}
}

func uploadImage(target uint32, img *image.RGBA) {
	width := int32(img.Rect.Dx())
	height := int32(img.Rect.Dy())
	gl.TexImage2D(target, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
