package graphics

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/nagini/internal/domain/entity"
)

// Colors for rendering
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorGrid       = color.RGBA{64, 64, 64, 255}
	ColorHead       = color.RGBA{0, 255, 0, 255}
	ColorApple      = color.RGBA{255, 0, 0, 255}
	ColorTitle      = color.RGBA{255, 0, 0, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorScore      = color.RGBA{255, 0, 0, 255}
)

// whitePixel is the source texture for filled polygons
var whitePixel *ebiten.Image

func fillSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// DrawCentered draws s horizontally centered on the screen with its top at y
func DrawCentered(dst *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx())/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawGridLines draws the cell boundaries of g
func DrawGridLines(dst *ebiten.Image, g entity.Grid) {
	w, h := float32(g.Width), float32(g.Height)
	for col := 0; col < g.Cols(); col++ {
		x := float32(col * g.Unit)
		vector.StrokeLine(dst, x, 0, x, h, 1, ColorGrid, false)
	}
	for row := 0; row < g.Rows(); row++ {
		y := float32(row * g.Unit)
		vector.StrokeLine(dst, 0, y, w, y, 1, ColorGrid, false)
	}
}

// DrawApple draws the apple as a disc filling its cell
func DrawApple(dst *ebiten.Image, c entity.Cell, unit int) {
	r := float32(unit) / 2
	vector.DrawFilledCircle(dst, float32(c.X)+r, float32(c.Y)+r, r, ColorApple, true)
}

// DrawSnake draws the body as green discs and the head as a pentagon
// pointing along heading
func DrawSnake(dst *ebiten.Image, segments []entity.Cell, heading entity.Heading, unit int) {
	r := float32(unit) / 2
	// Tail first so the head ends up on top
	for i := len(segments) - 1; i >= 1; i-- {
		c := segments[i]
		vector.DrawFilledCircle(dst, float32(c.X)+r, float32(c.Y)+r, r, BodyColor(i), true)
	}
	if len(segments) > 0 {
		drawPolygon(dst, HeadPolygon(segments[0], heading, unit), ColorHead)
	}
}

// BodyColor returns the shade of green for segment i.
// Shades cycle so neighbouring segments stay distinguishable.
func BodyColor(i int) color.RGBA {
	shades := [...]uint8{155, 185, 215, 245, 215, 185}
	g := shades[i%len(shades)]
	return color.RGBA{R: uint8(30 + (i*17)%70), G: g, B: uint8(20 + (i*29)%80), A: 255}
}

// HeadPolygon returns the five corners of the head pentagon inscribed in
// cell c, with the first corner pointing along heading
func HeadPolygon(c entity.Cell, heading entity.Heading, unit int) [5][2]float32 {
	r := float64(unit) / 2
	cx := float64(c.X) + r
	cy := float64(c.Y) + r

	offset := 0.0
	switch heading {
	case entity.HeadingUp:
		offset = -math.Pi / 2
	case entity.HeadingDown:
		offset = math.Pi / 2
	case entity.HeadingLeft:
		offset = math.Pi
	}

	var pts [5][2]float32
	for i := range pts {
		angle := 2*math.Pi/5*float64(i) + offset
		pts[i] = [2]float32{
			float32(cx + r*math.Cos(angle)),
			float32(cy + r*math.Sin(angle)),
		}
	}
	return pts
}

func drawPolygon(dst *ebiten.Image, pts [5][2]float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// ScoreText formats the score line
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
