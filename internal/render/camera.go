package render

import "chosenoffset.com/sightcone/internal/core/geom"

// Camera maps the X/Z ground plane onto the screen. World +X is screen right
// and world +Z is screen up.
type Camera struct {
	Center        geom.Vec3 // World point at the middle of the screen
	PixelsPerUnit float64
	ScreenWidth   int
	ScreenHeight  int
}

// WorldToScreen projects a world point to pixel coordinates
func (c Camera) WorldToScreen(p geom.Vec3) (x, y float32) {
	sx := float64(c.ScreenWidth)/2 + (p.X-c.Center.X)*c.PixelsPerUnit
	sy := float64(c.ScreenHeight)/2 - (p.Z-c.Center.Z)*c.PixelsPerUnit
	return float32(sx), float32(sy)
}

// ScreenToWorld is the inverse of WorldToScreen on the ground plane
func (c Camera) ScreenToWorld(x, y int) geom.Vec3 {
	wx := c.Center.X + (float64(x)-float64(c.ScreenWidth)/2)/c.PixelsPerUnit
	wz := c.Center.Z - (float64(y)-float64(c.ScreenHeight)/2)/c.PixelsPerUnit
	return geom.V(wx, wz)
}

// Scale converts a world length to pixels
func (c Camera) Scale(length float64) float32 {
	return float32(length * c.PixelsPerUnit)
}
