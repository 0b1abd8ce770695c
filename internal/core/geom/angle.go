package geom

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// DirFromAngle converts a global facing angle in degrees into a unit direction.
// 0° points along +Z and 90° along +X.
func DirFromAngle(deg float64) Vec3 {
	rad := deg * Deg2Rad
	return Vec3{X: math.Sin(rad), Z: math.Cos(rad)}
}

// AngleOf is the inverse of DirFromAngle, returning degrees in (-180, 180]
func AngleOf(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z) * Rad2Deg
}

// AngleBetween returns the unsigned angle between two directions in degrees, in [0, 180].
// A zero-length direction yields 0.
func AngleBetween(a, b Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * Rad2Deg
}

// NormalizeAngle wraps an angle in degrees into (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// DeltaAngle returns the shortest signed difference b - a in degrees
func DeltaAngle(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// FromPolar returns origin + DirFromAngle(deg) * dist, keeping the origin's height
func FromPolar(origin Vec3, deg, dist float64) Vec3 {
	return origin.Add(DirFromAngle(deg).Scale(dist))
}
