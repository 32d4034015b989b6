package vecmath

// Mat3 is a 3x3 matrix stored row-major. It is used sparingly in this
// package — most of the solver works directly with Vec3 dot/cross products
// — but the panel local frame is naturally expressed as a matrix whose
// rows are the (chordwise, spanwise, normal) unit axes, and tests check
// its orthonormality directly.
type Mat3 struct {
	Rows [3]Vec3
}

// FrameFromColumns builds the matrix whose columns are x, y, z.
func FrameFromColumns(x, y, z Vec3) Mat3 {
	return Mat3{Rows: [3]Vec3{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}}
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.Rows[0].Dot(v),
		m.Rows[1].Dot(v),
		m.Rows[2].Dot(v),
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{Rows: [3]Vec3{
		{m.Rows[0].X, m.Rows[1].X, m.Rows[2].X},
		{m.Rows[0].Y, m.Rows[1].Y, m.Rows[2].Y},
		{m.Rows[0].Z, m.Rows[1].Z, m.Rows[2].Z},
	}}
}

// IsOrthonormal reports whether the matrix's columns are mutually
// orthonormal within tol — used to assert panel-frame invariants.
func (m Mat3) IsOrthonormal(tol float64) bool {
	t := m.Transpose()
	cols := [3]Vec3{
		{m.Rows[0].X, m.Rows[1].X, m.Rows[2].X},
		{m.Rows[0].Y, m.Rows[1].Y, m.Rows[2].Y},
		{m.Rows[0].Z, m.Rows[1].Z, m.Rows[2].Z},
	}
	_ = t
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot := cols[i].Dot(cols[j])
			want := 0.0
			if i == j {
				want = 1.0
			}
			if abs(dot-want) > tol {
				return false
			}
		}
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
