// Native PNG rendering for automaton diagrams: states on a circle,
// straight transition arrows, self-loop arcs, text set in Go Regular.
// Rendered at 4x and downsampled for smoother output.

package fafile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/automata/pkg/fa"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Padding     int
	StateRadius int
	FontSize    int
	Title       string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       800,
		Height:      600,
		Padding:     60,
		StateRadius: 30,
		FontSize:    14,
	}
}

var (
	pngWhite     = color.RGBA{255, 255, 255, 255}
	pngBlack     = color.RGBA{51, 51, 51, 255}
	pngAccepting = color.RGBA{255, 243, 224, 255}
	pngAcceptBdr = color.RGBA{230, 81, 0, 255}
	pngInitial   = color.RGBA{232, 245, 233, 255}
)

type pngCanvas struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
}

// RenderPNG renders an automaton diagram to PNG.
func RenderPNG(m fa.FA, w io.Writer, opts PNGOptions) error {
	const scale = 4
	large := opts
	large.Width *= scale
	large.Height *= scale
	large.Padding *= scale
	large.StateRadius *= scale
	large.FontSize *= scale

	largeImg, err := renderImage(m, large, scale)
	if err != nil {
		return err
	}

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)
	return png.Encode(w, final)
}

func renderImage(m fa.FA, opts PNGOptions, scale int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, pngWhite)
		}
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(opts.FontSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	c := &pngCanvas{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 2,
		face:      face,
	}

	states := m.States()
	final := make(map[string]bool)
	for _, s := range m.FinalStates() {
		final[s] = true
	}

	// Circular layout, initial state at the left.
	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2
	layoutR := math.Min(cx, cy) - float64(opts.Padding) - float64(opts.StateRadius)
	if layoutR < float64(opts.StateRadius) {
		layoutR = float64(opts.StateRadius)
	}
	pos := make(map[string][2]float64, len(states))
	ordered := []string{m.Initial()}
	for _, s := range states {
		if s != m.Initial() {
			ordered = append(ordered, s)
		}
	}
	for i, s := range ordered {
		angle := math.Pi + 2*math.Pi*float64(i)/float64(len(ordered))
		pos[s] = [2]float64{cx + layoutR*math.Cos(angle), cy + layoutR*math.Sin(angle)}
	}
	r := float64(opts.StateRadius)

	if opts.Title != "" {
		c.text(opts.Width/2, opts.Padding/2, opts.Title, pngBlack)
	}

	// Transitions first so state discs overdraw arrow tails.
	type pair struct{ from, to string }
	seen := make(map[pair][]string)
	for _, e := range Edges(m) {
		key := pair{e.From, e.To}
		seen[key] = append(seen[key], e.Label)
	}
	for key, labels := range seen {
		label := labels[0]
		for _, l := range labels[1:] {
			label += ", " + l
		}
		p1, p2 := pos[key.from], pos[key.to]
		if key.from == key.to {
			c.selfLoop(p1[0], p1[1], r, label)
			continue
		}
		c.arrow(p1[0], p1[1], p2[0], p2[1], r, label)
	}

	// Entry arrow for the initial state.
	start := pos[m.Initial()]
	c.arrowLine(start[0]-r-40*c.scale, start[1], start[0]-r-c.lineWidth, start[1], pngBlack)

	for _, s := range states {
		p := pos[s]
		fill := pngWhite
		border := pngBlack
		if s == m.Initial() {
			fill = pngInitial
		}
		if final[s] {
			fill = pngAccepting
			border = pngAcceptBdr
		}
		c.circle(p[0], p[1], r, fill, border)
		if final[s] {
			c.circle(p[0], p[1], r-4*c.scale, fill, border)
		}
		c.text(int(p[0]), int(p[1]), s, pngBlack)
	}

	return img, nil
}

// circle draws a filled disc with a thick outline.
func (c *pngCanvas) circle(cx, cy, r float64, fill, stroke color.Color) {
	for dy := -r; dy <= r; dy++ {
		span := math.Sqrt(r*r - dy*dy)
		for dx := -span; dx <= span; dx++ {
			c.img.Set(int(cx+dx), int(cy+dy), fill)
		}
	}
	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		nx, ny := math.Cos(angle), math.Sin(angle)
		for t := -c.lineWidth / 2; t <= c.lineWidth/2; t += 0.5 {
			c.img.Set(int(cx+nx*(r+t)), int(cy+ny*(r+t)), stroke)
		}
	}
}

// line draws a thick line between two points.
func (c *pngCanvas) line(x1, y1, x2, y2 float64, col color.Color) {
	dx, dy := x2-x1, y2-y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		c.img.Set(int(x1), int(y1), col)
		return
	}
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX, perpY := -dy/dist, dx/dist
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px, py := x1+dx*t, y1+dy*t
		for o := -c.lineWidth / 2; o <= c.lineWidth/2; o += 0.5 {
			c.img.Set(int(px+perpX*o), int(py+perpY*o), col)
		}
	}
}

// arrowLine draws a line ending in a filled arrowhead.
func (c *pngCanvas) arrowLine(x1, y1, x2, y2 float64, col color.Color) {
	c.line(x1, y1, x2, y2, col)

	dx, dy := x2-x1, y2-y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		return
	}
	nx, ny := dx/dist, dy/dist
	arrowLen := 8.0 * c.scale
	arrowWidth := 4.0 * c.scale
	ax1 := x2 - nx*arrowLen + ny*arrowWidth
	ay1 := y2 - ny*arrowLen - nx*arrowWidth
	ax2 := x2 - nx*arrowLen - ny*arrowWidth
	ay2 := y2 - ny*arrowLen + nx*arrowWidth
	for t := 0.0; t <= 1.0; t += 0.05 {
		c.line(x2, y2, ax1+(ax2-ax1)*t, ay1+(ay2-ay1)*t, col)
	}
}

// arrow draws a labeled transition between two state discs.
func (c *pngCanvas) arrow(x1, y1, x2, y2, r float64, label string) {
	dx, dy := x2-x1, y2-y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		return
	}
	nx, ny := dx/dist, dy/dist
	sx, sy := x1+nx*r, y1+ny*r
	ex, ey := x2-nx*(r+c.lineWidth), y2-ny*(r+c.lineWidth)
	c.arrowLine(sx, sy, ex, ey, pngBlack)

	mx, my := (sx+ex)/2, (sy+ey)/2
	c.text(int(mx-ny*12*c.scale), int(my+nx*12*c.scale), label, pngBlack)
}

// selfLoop draws a labeled loop arc above a state.
func (c *pngCanvas) selfLoop(x, y, r float64, label string) {
	arcR := r * 0.6
	arcX, arcY := x, y-r-arcR*0.7
	start := 0.6 * math.Pi
	end := start + 1.8*math.Pi
	steps := 50
	var px, py float64
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := start + t*(end-start)
		qx := arcX + arcR*math.Cos(angle)
		qy := arcY + arcR*math.Sin(angle)
		if i > 0 {
			c.line(px, py, qx, qy, pngBlack)
		}
		px, py = qx, qy
	}
	c.text(int(arcX), int(arcY-arcR-10*c.scale), label, pngBlack)
}

// text draws a string centered on the given point.
func (c *pngCanvas) text(x, y int, s string, col color.Color) {
	width := font.MeasureString(c.face, s).Ceil()
	metrics := c.face.Metrics()
	baselineY := y + int(float64(metrics.Ascent.Ceil())*0.35)

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(s)
}
