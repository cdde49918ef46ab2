package glback

import (
	"fmt"
	"image"
	"math"
	"time"
	"unicode"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gregjohnson2017/viewport/pkg/log"
	"github.com/gregjohnson2017/viewport/pkg/perf"
)

const minASCII = 32

// ErrNoFontGlyph indicates the built-in font does not contain a glyph
const ErrNoFontGlyph log.ConstErr = "font does not contain given glyph"

func int26_6ToFloat32(x fixed.Int26_6) float32 {
	top := float32(x >> 6)
	bottom := float32(x&0x3F) / 64.0
	return top + bottom
}

type runeInfo struct {
	row      int32
	width    int32
	height   int32
	bearingX float32
	bearingY float32
	advance  float32
}

// glyphAtlas caches the rasterized ASCII glyphs of the built-in font at one
// size. Glyph coverage is stacked into a single-column texture strip; each
// runeInfo records its rows and spacing.
type glyphAtlas struct {
	tex     Texture
	runeMap [unicode.MaxASCII - minASCII]runeInfo
	ascent  float32
	height  float32
}

// newGlyphAtlas rasterizes the built-in font at the given pixel size and
// uploads the glyph coverage into an OpenGL texture.
func newGlyphAtlas(size int32) (*glyphAtlas, error) {
	sw := perf.Start()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{Size: float64(size)})

	a := &glyphAtlas{}
	var glyphBytes []byte
	var currentIndex int32
	for i := minASCII; i < unicode.MaxASCII; i++ {
		c := rune(i)

		roundedRect, mask, maskp, advance, okGlyph := face.Glyph(fixed.Point26_6{}, c)
		if !okGlyph {
			return nil, fmt.Errorf("atlas size %v glyph '%v': %w", size, c, ErrNoFontGlyph)
		}
		accurateRect, _, okBounds := face.GlyphBounds(c)
		glyph, okCast := mask.(*image.Alpha)
		if !okBounds || !okCast {
			return nil, fmt.Errorf("atlas size %v glyph '%v': %w", size, c, ErrNoFontGlyph)
		}

		a.runeMap[i-minASCII] = runeInfo{
			row:      currentIndex,
			width:    int32(roundedRect.Dx()),
			height:   int32(roundedRect.Dy()),
			bearingX: float32(math.Round(float64(accurateRect.Min.X.Ceil()))),
			bearingY: float32(accurateRect.Max.Y.Ceil()),
			advance:  float32(math.Round(float64(int26_6ToFloat32(advance)))),
		}
		for row := 0; row < roundedRect.Dy(); row++ {
			beg := (maskp.Y + row) * glyph.Stride
			end := (maskp.Y + row + 1) * glyph.Stride
			glyphBytes = append(glyphBytes, glyph.Pix[beg:end]...)
			currentIndex++
		}
	}

	_, mask, _, _, aOK := face.Glyph(fixed.Point26_6{}, 'A')
	if !aOK {
		return nil, fmt.Errorf("atlas size %v glyph 'A': %w", size, ErrNoFontGlyph)
	}
	glyph, _ := mask.(*image.Alpha)
	texWidth := int32(glyph.Stride)
	texHeight := int32(len(glyphBytes) / glyph.Stride)

	a.tex = NewTexture(texWidth, texHeight, glyphBytes, gl.RED, 1)

	sfntFont, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	otfFace, err := opentype.NewFace(sfntFont, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	metrics := otfFace.Metrics()
	a.ascent = int26_6ToFloat32(metrics.Ascent)
	a.height = int26_6ToFloat32(metrics.Height)

	log.Perff("built %vpx glyph atlas:\t%v", size, time.Duration(int64(time.Nanosecond)*sw.StopGetNano()))
	return a, nil
}

// mapString turns each character in the string into a pair of
// (x,y,s,t)-vertex triangles using the atlas glyph info. The top-left corner
// of the first line is placed at (x, y); newlines restart at x advanced by
// lineStep vertically. spacing is added after each glyph's advance.
func (a *glyphAtlas) mapString(str string, x, y, spacing, lineStep float32) []float32 {
	// 2 triangles per rune, 3 vertices per triangle, 4 float32's per vertex
	buffer := make([]float32, 0, len(str)*24)
	penX := x
	baseline := y + a.ascent
	for _, r := range str {
		if r == '\n' {
			penX = x
			baseline += lineStep
			continue
		}
		if r < minASCII || r >= unicode.MaxASCII {
			continue
		}
		info := a.runeMap[r-minASCII]

		// pixel coordinates with a top-left origin; the shader converts
		left := penX + info.bearingX
		top := baseline - info.bearingY
		right := left + float32(info.width)
		bottom := top + float32(info.height)
		// s,t atlas coordinates in pixels with a top-left origin
		texT := float32(info.row)
		texB := texT + float32(info.height)
		texR := float32(info.width)

		triangles := []float32{
			left, bottom, 0, texB, // bottom-left
			left, top, 0, texT, // top-left
			right, top, texR, texT, // top-right

			left, bottom, 0, texB, // bottom-left
			right, top, texR, texT, // top-right
			right, bottom, texR, texB, // bottom-right
		}
		buffer = append(buffer, triangles...)

		penX += info.advance + spacing
	}
	return buffer
}

func (a *glyphAtlas) delete() {
	a.tex.Delete()
}
