// Package render provides the OpenGL debug view: a ground grid, a heading
// marker for the body and its velocity vector.
package render

import "github.com/Faultbox/strider/pkg/math"

// Vertex is a colored point in [x, y, z, r, g, b] layout.
type Vertex struct {
	X, Y, Z float32
	R, G, B float32
}

var (
	gridColor   = [3]float32{0.35, 0.35, 0.4}
	axisXColor  = [3]float32{0.6, 0.25, 0.25}
	axisZColor  = [3]float32{0.25, 0.35, 0.6}
	markerColor = [3]float32{0.95, 0.8, 0.2}
	velColor    = [3]float32{0.3, 0.9, 0.4}
)

// GridLines generates line vertices for a square ground grid centered at the
// origin. halfExtent is the distance from center to edge, step the line
// spacing. The two axis lines through the origin are tinted.
func GridLines(halfExtent, step, y float32) []Vertex {
	if halfExtent <= 0 || step <= 0 {
		return nil
	}

	var vertices []Vertex
	for d := -halfExtent; d <= halfExtent+step/2; d += step {
		colX := gridColor
		colZ := gridColor
		if d > -step/2 && d < step/2 {
			colX = axisZColor // line along Z at x=0
			colZ = axisXColor // line along X at z=0
		}
		// Line parallel to Z at x=d
		vertices = append(vertices,
			Vertex{d, y, -halfExtent, colX[0], colX[1], colX[2]},
			Vertex{d, y, halfExtent, colX[0], colX[1], colX[2]},
		)
		// Line parallel to X at z=d
		vertices = append(vertices,
			Vertex{-halfExtent, y, d, colZ[0], colZ[1], colZ[2]},
			Vertex{halfExtent, y, d, colZ[0], colZ[1], colZ[2]},
		)
	}
	return vertices
}

// HeadingMarker generates a triangle at pos pointing along the body's
// heading. size is the distance from center to nose.
func HeadingMarker(pos math.Vec3, orientation math.Quat, size float32) []Vertex {
	model := math.Translate(pos.X, pos.Y, pos.Z).Mul(orientation.ToMat4())

	// Local space: nose on -Z, tail corners behind.
	local := [][3]float32{
		{0, 0, -size},
		{-size * 0.6, 0, size * 0.7},
		{size * 0.6, 0, size * 0.7},
	}

	verts := make([]Vertex, 0, 3)
	for _, p := range local {
		w := model.TransformPoint(p)
		verts = append(verts, Vertex{
			w[0], w[1] + 0.02, w[2], // lift slightly off the grid
			markerColor[0], markerColor[1], markerColor[2],
		})
	}
	return verts
}

// VelocityLine generates a line from pos along the planar velocity. Returns
// nil when the body is at rest.
func VelocityLine(pos math.Vec3, velocity math.Vec3) []Vertex {
	v := velocity.WithY(0)
	if v.Length() < 1e-3 {
		return nil
	}
	tip := pos.Add(v.Scale(0.3))
	return []Vertex{
		{pos.X, pos.Y + 0.05, pos.Z, velColor[0], velColor[1], velColor[2]},
		{tip.X, tip.Y + 0.05, tip.Z, velColor[0], velColor[1], velColor[2]},
	}
}
