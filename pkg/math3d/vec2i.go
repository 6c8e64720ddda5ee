package math3d

// Vec2i is an integer 2D vector, used for pixel coordinates.
// Components may be negative or exceed a buffer's size before clamping.
type Vec2i struct {
	X, Y int
}

// V2i creates a new Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// Min returns the component-wise minimum.
func (a Vec2i) Min(b Vec2i) Vec2i {
	return Vec2i{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2i) Max(b Vec2i) Vec2i {
	return Vec2i{max(a.X, b.X), max(a.Y, b.Y)}
}

// Transpose swaps the X and Y components.
func (a Vec2i) Transpose() Vec2i {
	return Vec2i{a.Y, a.X}
}

// Vec3i is an integer 3D vector. The barycentric test builds its edge
// vectors from pixel coordinates, so it stays in integers until the divide.
type Vec3i struct {
	X, Y, Z int
}

// Cross returns the cross product a × b.
func (a Vec3i) Cross(b Vec3i) Vec3i {
	return Vec3i{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}
