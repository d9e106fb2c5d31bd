package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"ptview/internal/cloud"
)

const (
	viewAngle = 30 * math.Pi / 180
	nearPlane = 1e-6
	orbitStep = 5 * math.Pi / 180
	panStep   = 0.05
	zoomStep  = 1.2
	maxPitch  = math.Pi / 2
)

// camera orbits the center of the cloud. With yaw and pitch at zero it looks down -Z
// with +Y up.
type camera struct {
	center mgl64.Vec3
	radius float64
	yaw    float64
	pitch  float64
	zoom   float64
	// pan offsets in units of radius
	panX float64
	panY float64
}

// fitCamera frames the bounding sphere of b.
func fitCamera(b cloud.Bounds, ok bool) camera {
	c := camera{radius: 1, zoom: 1}
	if !ok {
		return c
	}
	ctr := b.Center()
	c.center = mgl64.Vec3{ctr.X, ctr.Y, ctr.Z}
	if r := b.Radius(); r > 0 {
		c.radius = r
	}
	return c
}

func (c camera) distance() float64 {
	return c.radius / math.Sin(viewAngle/2) / c.zoom
}

func (c camera) view() mgl64.Mat4 {
	return mgl64.Translate3D(c.panX*c.radius, c.panY*c.radius, -c.distance()).
		Mul4(mgl64.HomogRotate3DX(c.pitch)).
		Mul4(mgl64.HomogRotate3DY(c.yaw)).
		Mul4(mgl64.Translate3D(-c.center.X(), -c.center.Y(), -c.center.Z()))
}

func (c *camera) orbit(dYaw, dPitch float64) {
	c.yaw = math.Mod(c.yaw+dYaw, 2*math.Pi)
	c.pitch = math.Max(-maxPitch, math.Min(maxPitch, c.pitch+dPitch))
}

func (c *camera) pan(dx, dy float64) {
	c.panX += dx / c.zoom
	c.panY += dy / c.zoom
}

func (c *camera) zoomBy(f float64) {
	z := c.zoom * f
	if z < 0.05 || z > 64 {
		return
	}
	c.zoom = z
}

// projector maps world points onto a w x h pixel grid with a perspective projection.
type projector struct {
	view  mgl64.Mat4
	scale float64
	w, h  int
}

func (c camera) projector(w, h int) projector {
	return projector{
		view:  c.view(),
		scale: float64(min(w, h)) / 2 / math.Tan(viewAngle/2),
		w:     w,
		h:     h,
	}
}

// project returns the pixel of p and its distance along the view axis. ok is false for
// points behind the camera, off the grid, or not finite.
func (p projector) project(v r3.Vector) (x, y int, depth float64, ok bool) {
	e := p.view.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	depth = -e.Z()
	if !(depth > nearPlane) {
		return 0, 0, 0, false
	}
	fx := float64(p.w)/2 + p.scale*e.X()/depth
	fy := float64(p.h)/2 - p.scale*e.Y()/depth
	if !(fx >= 0 && fx < float64(p.w) && fy >= 0 && fy < float64(p.h)) {
		return 0, 0, 0, false
	}
	return int(fx), int(fy), depth, true
}
