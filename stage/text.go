package stage

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize is the point size of the embedded measuring face. The
// inspector's labels are small diagnostic text; one fixed face is enough.
const defaultFontSize = 12

var (
	fontOnce       sync.Once
	fontFace       *text.GoTextFace
	fontLineHeight float64
)

// measuringFace parses the embedded Go Regular face on first use. Parsing is
// pure CPU work, so measurement stays usable in headless tests.
func measuringFace() *text.GoTextFace {
	fontOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("stage: failed to parse embedded font: " + err.Error())
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   defaultFontSize,
		}
		m := fontFace.Metrics()
		fontLineHeight = m.HAscent + m.HDescent + m.HLineGap
	})
	return fontFace
}

// MeasureText returns the rendered width and height of s in the stage's
// text face.
func MeasureText(s string) (width, height float64) {
	face := measuringFace()
	return text.Measure(s, face, fontLineHeight)
}

// TextLineHeight returns the vertical distance between baselines of the
// stage's text face.
func TextLineHeight() float64 {
	measuringFace()
	return fontLineHeight
}
