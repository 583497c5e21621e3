package anim

// Vertex is one triangle corner in model space.
type Vertex struct {
	X, Y, Z float64
}

// Shape is a triangle list: every three consecutive vertices form one triangle.
type Shape []Vertex

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Triangles returns the number of whole triangles in the shape.
func (s Shape) Triangles() int { return len(s) / 3 }

// StarOuterVertices is the number of leading star vertices that belong to the four
// points. The remaining vertices form the center square.
const StarOuterVertices = 12

var logoTable = [...]float64{
	-0.6, 0.8, 0.0, -0.6, 0.4, 0.0, -0.2, 0.8, 0.0,
	-0.6, 0.4, 0.0, -0.2, 0.8, 0.0, -0.2, 0.4, 0.0,
	-0.2, 0.8, 0.0, -0.2, 0.4, 0.0, 0.2, 0.8, 0.0,
	-0.2, 0.4, 0.0, 0.2, 0.8, 0.0, 0.2, 0.4, 0.0,
	0.2, 0.8, 0.0, 0.2, 0.4, 0.0, 0.6, 0.8, 0.0,
	0.2, 0.4, 0.0, 0.6, 0.8, 0.0, 0.6, 0.4, 0.0,

	-0.2, 0.4, 0.0, 0.2, 0.4, 0.0, -0.2, -0.4, 0.0,
	0.2, 0.4, 0.0, -0.2, -0.4, 0.0, 0.2, -0.4, 0.0,

	-0.2, -0.4, 0.0, 0.2, -0.4, 0.0, -0.2, -0.8, 0.0,
	0.2, -0.4, 0.0, -0.2, -0.8, 0.0, 0.2, -0.8, 0.0,
	0.2, -0.4, 0.0, 0.6, -0.8, 0.0, 0.2, -0.8, 0.0,
	0.2, -0.4, 0.0, 0.6, -0.8, 0.0, 0.6, -0.4, 0.0,
	-0.2, -0.4, 0.0, -0.2, -0.8, 0.0, -0.6, -0.8, 0.0,
	-0.2, -0.4, 0.0, -0.6, -0.8, 0.0, -0.6, -0.4, 0.0,
}

var starTable = [...]float64{
	// points: top, right, bottom, left
	0.0, 0.8, 0.0, -0.2, 0.2, 0.0, 0.2, 0.2, 0.0,
	0.2, 0.2, 0.0, 0.8, 0.0, 0.0, 0.2, -0.2, 0.0,
	0.2, -0.2, 0.0, 0.0, -0.8, 0.0, -0.2, -0.2, 0.0,
	-0.2, -0.2, 0.0, -0.8, 0.0, 0.0, -0.2, 0.2, 0.0,

	// center square
	-0.2, -0.2, 0.0, 0.2, 0.2, 0.0, -0.2, 0.2, 0.0,
	-0.2, -0.2, 0.0, 0.2, 0.2, 0.0, 0.2, -0.2, 0.0,
}

// LogoShape returns a fresh copy of the block "I" logo (14 triangles).
func LogoShape() Shape { return shapeFromTable(logoTable[:]) }

// StarShape returns a fresh copy of the shuriken star (6 triangles).
func StarShape() Shape { return shapeFromTable(starTable[:]) }

func shapeFromTable(t []float64) Shape {
	s := make(Shape, 0, len(t)/3)
	for i := 0; i+2 < len(t); i += 3 {
		s = append(s, Vertex{X: t[i], Y: t[i+1], Z: t[i+2]})
	}
	return s
}
