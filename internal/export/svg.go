// Package export renders canvases and flights as SVG.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/stardrift/internal/telemetry"
)

const background = "#0a0a0a"

// DotGrid is a monochrome dot raster, such as a braille canvas.
type DotGrid interface {
	Dots() (w, h int)
	IsSet(x, y int) bool
}

// CanvasToSVG draws every lit dot of g as a circle, scale pixels apart.
func CanvasToSVG(g DotGrid, scale float64) string {
	if g == nil {
		return ""
	}
	w, h := g.Dots()
	width, height := float64(w)*scale, float64(h)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="#00ff00">
`, width, height, width, height, background)

	dotRadius := scale * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Circle is a body seen from above: X and Z world coordinates and a radius.
type Circle struct {
	Name   string
	X, Z   float64
	Radius float64
	Heavy  bool
}

// FlightToSVG draws a top-down (X/Z) view of a flight: the boundary circle
// around the origin, the bodies, the camera path and its start and end.
func FlightToSVG(samples []telemetry.Sample, bodies []Circle, boundary float64, size int) string {
	if len(samples) == 0 || size <= 0 {
		return ""
	}

	extent := boundary
	for _, s := range samples {
		extent = math.Max(extent, math.Max(math.Abs(float64(s.Camera[0])), math.Abs(float64(s.Camera[2]))))
	}
	extent *= 1.1
	half := float64(size) / 2
	scale := half / extent
	px := func(x, z float64) (float64, float64) { return half + x*scale, half + z*scale }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background)

	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"#444466\" stroke-dasharray=\"4 4\"/>\n",
		half, half, boundary*scale)

	for _, b := range bodies {
		fill := "#8888aa"
		if b.Heavy {
			fill = "#ff6b6b"
		}
		cx, cy := px(b.X, b.Z)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"><title>%s</title></circle>\n",
			cx, cy, math.Max(b.Radius*scale, 1), fill, b.Name)
	}

	sb.WriteString(`<path fill="none" stroke="#00ffff" stroke-width="1.5" d="`)
	for i, s := range samples {
		x, y := px(float64(s.Camera[0]), float64(s.Camera[2]))
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")

	sx, sy := px(float64(samples[0].Camera[0]), float64(samples[0].Camera[2]))
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"#00ff00\"/>\n", sx, sy)
	last := samples[len(samples)-1]
	ex, ey := px(float64(last.Camera[0]), float64(last.Camera[2]))
	end := "#ffffff"
	if last.Crashed {
		end = "#ff0000"
	}
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", ex, ey, end)

	sb.WriteString("</svg>")
	return sb.String()
}
