package game

import (
	"image"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTexture returns a stable GL handle for a named sprite, generating
// and uploading it on first use. Unknown names get a magenta marker
// texture rather than failing the draw.
func (r *Renderer) LoadTexture(name string) uint32 {
	if tex, ok := r.textures[name]; ok {
		return tex
	}
	img := generateSprite(name)
	tex := uploadTexture(img)
	r.textures[name] = tex
	return tex
}

func uploadTexture(img *image.NRGBA) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

const spriteSize = 32

// generateSprite draws a named sprite into a small RGBA image. There
// are no art assets; everything is synthesized, like the sound effects.
func generateSprite(name string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	switch name {
	case "customer_single":
		drawFace(img, archetypeFill(ArchSingle), false)
	case "customer_spread":
		drawFace(img, archetypeFill(ArchSpread), false)
	case "customer_barrage":
		drawFace(img, archetypeFill(ArchBarrage), true)
	default:
		// Unknown sprite: loud magenta checker so it gets noticed.
		for y := 0; y < spriteSize; y++ {
			for x := 0; x < spriteSize; x++ {
				if (x/4+y/4)%2 == 0 {
					putPix(img, x, y, Hex(0xFF00FF))
				}
			}
		}
	}
	return img
}

func putPix(img *image.NRGBA, x, y int, c Color) {
	if x < 0 || y < 0 || x >= spriteSize || y >= spriteSize {
		return
	}
	o := img.PixOffset(x, y)
	img.Pix[o] = c.R
	img.Pix[o+1] = c.G
	img.Pix[o+2] = c.B
	img.Pix[o+3] = c.A
}

func discPix(img *image.NRGBA, cx, cy, r int, c Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				putPix(img, x, y, c)
			}
		}
	}
}

// drawFace paints a round customer head with eyes; spiky == true adds
// the barrage archetype's hair spikes.
func drawFace(img *image.NRGBA, body Color, spiky bool) {
	mid := spriteSize / 2
	if spiky {
		for i := 0; i < 8; i++ {
			ang := float64(i) * math.Pi / 4
			x := mid + int(14*math.Cos(ang))
			y := mid + int(14*math.Sin(ang))
			discPix(img, x, y, 3, body.Scaled(0.7))
		}
	}
	discPix(img, mid, mid, 13, body)
	eye := Hex(0x1E1E24)
	discPix(img, mid-5, mid-3, 2, eye)
	discPix(img, mid+5, mid-3, 2, eye)
	// Flat mouth.
	for x := mid - 4; x <= mid+4; x++ {
		putPix(img, x, mid+6, eye)
	}
}
