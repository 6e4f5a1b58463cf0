// Package diagram draws small SVG illustrations of the predefined spaces and
// caches them in process.
package diagram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"

	"topologia/src/logger"
)

const (
	width  = 600
	height = 400
)

// Renderer renders and caches diagrams keyed by space
type Renderer struct {
	cache *cache.Cache
}

// NewRenderer creates a renderer whose cached diagrams live for ttl.
func NewRenderer(ttl time.Duration) *Renderer {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Renderer{cache: cache.New(ttl, 2*ttl)}
}

// Render returns the diagram of spaceType, drawing it on a cache miss.
func (r *Renderer) Render(spaceType string) []byte {
	if cached, ok := r.cache.Get(spaceType); ok {
		return cached.([]byte)
	}

	svg := Draw(spaceType)
	r.cache.SetDefault(spaceType, svg)

	logger.Debug().
		Str("space_type", spaceType).
		Str("size", humanize.Bytes(uint64(len(svg)))).
		Msg("Diagram rendered")

	return svg
}

// Cached reports whether a diagram for spaceType is in the cache.
func (r *Renderer) Cached(spaceType string) bool {
	_, ok := r.cache.Get(spaceType)
	return ok
}

// Draw renders the diagram of spaceType without caching.
func Draw(spaceType string) []byte {
	var c canvas
	switch spaceType {
	case "real_line":
		drawRealLine(&c)
	case "discrete":
		drawDiscrete(&c)
	case "indiscrete":
		drawIndiscrete(&c)
	case "euclidean_plane":
		drawEuclideanPlane(&c)
	default:
		c.text(width/2, height/2, 20, "middle", "", "Visualización de "+spaceType)
	}

	return c.svg()
}

// canvas accumulates SVG elements
type canvas struct {
	body strings.Builder
}

func (c *canvas) svg() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="white"/>`)
	b.WriteString(c.body.String())
	b.WriteString(`</svg>`)

	return []byte(b.String())
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string, w float64) {
	fmt.Fprintf(&c.body, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`, x1, y1, x2, y2, stroke, w)
}

func (c *canvas) circle(cx, cy, r float64, stroke, fill string, dashed bool) {
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(&c.body, `<circle cx="%g" cy="%g" r="%g" stroke="%s" stroke-width="2" fill="%s"%s/>`, cx, cy, r, stroke, fill, dash)
}

func (c *canvas) rect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&c.body, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="black" stroke-width="2"/>`, x, y, w, h, fill)
}

func (c *canvas) text(x, y, size float64, anchor, style, s string) {
	extra := ""
	if style != "" {
		extra = ` font-style="` + style + `"`
	}
	fmt.Fprintf(&c.body, `<text x="%g" y="%g" font-size="%g" text-anchor="%s"%s>%s</text>`, x, y, size, anchor, extra, html.EscapeString(s))
}

func (c *canvas) title(s string) {
	fmt.Fprintf(&c.body, `<text x="%d" y="30" font-size="18" font-weight="bold" text-anchor="middle">%s</text>`, width/2, html.EscapeString(s))
}

func drawRealLine(c *canvas) {
	c.title("Topología Estándar en ℝ")
	c.line(40, 200, 560, 200, "black", 1)
	c.line(550, 195, 560, 200, "black", 1)
	c.line(550, 205, 560, 200, "black", 1)

	// (0,1): open endpoints
	c.line(140, 160, 220, 160, "blue", 3)
	c.circle(130, 160, 6, "blue", "white", false)
	c.circle(230, 160, 6, "blue", "white", false)
	c.text(180, 145, 13, "middle", "", "(0,1) - Abierto")

	// [2,3]: closed endpoints
	c.line(330, 240, 430, 240, "red", 3)
	c.circle(330, 240, 6, "red", "red", false)
	c.circle(430, 240, 6, "red", "red", false)
	c.text(380, 270, 13, "middle", "", "[2,3] - Cerrado")
}

func drawDiscrete(c *canvas) {
	c.title("Topología Discreta en {1,2,3,4}")
	for i := 1; i <= 4; i++ {
		x := float64(i) * 120
		c.circle(x, 200, 10, "red", "red", false)
		c.circle(x, 200, 40, "blue", "none", true)
		c.text(x, 265, 14, "middle", "", fmt.Sprint(i))
	}
	c.text(width/2, 90, 14, "middle", "italic", "Todos los subconjuntos son abiertos")
}

func drawIndiscrete(c *canvas) {
	c.title("Topología Indiscreta (Trivial)")
	c.rect(100, 150, 400, 100, "lightblue")
	c.text(width/2, 205, 16, "middle", "", "X = {1,2,3,4}")
	c.text(width/2, 320, 14, "middle", "italic", "Solo ∅ y X son abiertos")
}

func drawEuclideanPlane(c *canvas) {
	c.title("Topología Euclidiana en ℝ²")
	c.circle(200, 250, 70, "blue", "none", false)
	c.circle(340, 180, 95, "red", "none", false)
	c.circle(200, 250, 4, "black", "black", false)
	c.circle(340, 180, 4, "black", "black", false)
	c.text(200, 275, 13, "middle", "", "B₁")
	c.text(365, 165, 13, "middle", "", "B₂")
	c.text(width/2, 375, 13, "middle", "italic", "Bolas abiertas (discos) generan la topología")
}
