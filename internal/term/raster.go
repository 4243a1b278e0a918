package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"driftfield/internal/field"
)

// Surface units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide, so this keeps the field's geometry round.
const (
	CellW = 8
	CellH = 16
)

// Glyphs for particle bodies.
const (
	glyphSmall = '•'
	glyphLarge = '●'

	// Particles at least this big use glyphLarge.
	largeSize = 3.0
)

// Raster composites the field into a grid of cells: halos and connection
// lines tint the cell background, particle bodies are glyphs.
type Raster struct {
	cols, rows int
	bg         []colorful.Color
	fg         []colorful.Color
	glyph      []rune
}

func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

func (r *Raster) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	r.cols, r.rows = cols, rows
	n := cols * rows
	r.bg = make([]colorful.Color, n)
	r.fg = make([]colorful.Color, n)
	r.glyph = make([]rune, n)
}

func (r *Raster) Size() (cols, rows int) { return r.cols, r.rows }

// Cell returns the composited glyph and colours at (x, y).
func (r *Raster) Cell(x, y int) (rune, colorful.Color, colorful.Color) {
	i := y*r.cols + x
	return r.glyph[i], r.fg[i], r.bg[i]
}

// Draw clears the grid and paints halos, then bodies, then connection lines.
func (r *Raster) Draw(f *field.Field, conns []field.Connection) {
	base := toColorful(field.Background)
	for i := range r.bg {
		r.bg[i] = base
		r.fg[i] = base
		r.glyph[i] = ' '
	}
	if r.cols == 0 || r.rows == 0 {
		return
	}

	for i := range f.P {
		r.paintHalo(&f.P[i])
	}
	for i := range f.P {
		p := &f.P[i]
		idx, ok := r.index(p.X, p.Y)
		if !ok || p.Size <= 0 {
			continue
		}
		r.fg[idx] = r.bg[idx].BlendRgb(toColorful(p.Col), clamp01(p.Opacity))
		if p.Size >= largeSize {
			r.glyph[idx] = glyphLarge
		} else {
			r.glyph[idx] = glyphSmall
		}
	}

	link := toColorful(field.LinkColor)
	for _, c := range conns {
		a, b := &f.P[c.I], &f.P[c.J]
		r.paintLine(a.X, a.Y, b.X, b.Y, link, c.Opacity)
	}
}

func (r *Raster) paintHalo(p *field.Particle) {
	radius := p.Size + field.GlowBlur
	col := toColorful(p.Col)
	x0 := int(math.Floor((p.X - radius) / CellW))
	x1 := int(math.Floor((p.X + radius) / CellW))
	y0 := int(math.Floor((p.Y - radius) / CellH))
	y1 := int(math.Floor((p.Y + radius) / CellH))
	for cy := max(y0, 0); cy <= min(y1, r.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, r.cols-1); cx++ {
			// Distance from the particle to the cell centre.
			dx := (float64(cx)+0.5)*CellW - p.X
			dy := (float64(cy)+0.5)*CellH - p.Y
			falloff := 1 - math.Hypot(dx, dy)/radius
			if falloff <= 0 {
				continue
			}
			i := cy*r.cols + cx
			r.bg[i] = r.bg[i].BlendRgb(col, field.GlowOpacity*falloff*falloff)
		}
	}
}

// paintLine steps along the segment at half-cell resolution, tinting each
// distinct cell once.
func (r *Raster) paintLine(x0, y0, x1, y1 float64, col colorful.Color, opacity float64) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0)/(CellW/2), math.Abs(y1-y0)/(CellH/2))))
	last := -1
	for s := 0; s <= steps; s++ {
		t := 0.0
		if steps > 0 {
			t = float64(s) / float64(steps)
		}
		idx, ok := r.index(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if !ok || idx == last {
			continue
		}
		last = idx
		r.bg[idx] = r.bg[idx].BlendRgb(col, opacity)
		if r.glyph[idx] != ' ' {
			r.fg[idx] = r.fg[idx].BlendRgb(col, opacity)
		}
	}
}

// index maps surface coordinates to a cell, clamping the far edges, which the
// wrap rule allows particles to sit on exactly.
func (r *Raster) index(x, y float64) (int, bool) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	cx := min(int(x/CellW), r.cols-1)
	cy := min(int(y/CellH), r.rows-1)
	if cx < 0 || cy < 0 {
		return 0, false
	}
	return cy*r.cols + cx, true
}

// Flush writes the grid to screen, scaled by fade (0 = black, 1 = full).
func (r *Raster) Flush(screen tcell.Screen, fade float64) {
	black := colorful.Color{}
	fade = clamp01(fade)
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			i := y*r.cols + x
			style := tcell.StyleDefault.
				Background(toTcell(black.BlendRgb(r.bg[i], fade))).
				Foreground(toTcell(black.BlendRgb(r.fg[i], fade)))
			screen.SetContent(x, y, r.glyph[i], nil, style)
		}
	}
}

func toColorful(c field.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
