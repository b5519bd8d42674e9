package render

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Font faces tried in order for placeholder text. Missing fonts are not an
// error; we fall back to the built-in bitmap face.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// Placeholder writes a fixed-size 800x600 PNG to outPath with the error
// message drawn onto a solid background, overwriting any existing file. It is
// the last line of defense for the render stage: its own failure is returned
// for reporting but must never crash the caller.
func Placeholder(message, outPath string) error {
	dc := gg.NewContext(imageWidth, imageHeight)

	dc.SetRGB(0.17, 0.19, 0.23)
	dc.Clear()

	loaded := false
	for _, path := range fontCandidates {
		if err := dc.LoadFontFace(path, 16); err == nil {
			loaded = true
			break
		}
	}
	if !loaded {
		dc.SetFontFace(basicfont.Face7x13)
	}

	dc.SetRGB(0.92, 0.92, 0.92)
	dc.DrawStringWrapped("Render failed:\n\n"+message, 24, 24, 0, 0, imageWidth-48, 1.5, gg.AlignLeft)

	return dc.SavePNG(outPath)
}
