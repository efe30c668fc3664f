package graphics

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels
const (
	SizeTitle   = 64
	SizeHeading = 40
	SizeBody    = 18
	SizeHint    = 20
)

// Fonts holds the faces used by every screen
type Fonts struct {
	Title   *text.GoTextFace
	Heading *text.GoTextFace
	Body    *text.GoTextFace
	Hint    *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts
func LoadFonts() (*Fonts, error) {
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	regularSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}

	return &Fonts{
		Title:   &text.GoTextFace{Source: boldSrc, Size: SizeTitle},
		Heading: &text.GoTextFace{Source: boldSrc, Size: SizeHeading},
		Body:    &text.GoTextFace{Source: regularSrc, Size: SizeBody},
		Hint:    &text.GoTextFace{Source: boldSrc, Size: SizeHint},
	}, nil
}
