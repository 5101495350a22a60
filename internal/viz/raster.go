package viz

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"
)

// newScene creates a canvas matching the pixel dimensions (one unit per
// pixel, origin bottom-left) with a black background already filled.
func newScene(width, height int) (*canvas.Canvas, *canvas.Context) {
	w, h := float64(width), float64(height)
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(color.Black)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))
	return c, ctx
}

// applyRotation rotates all subsequent drawing about the scene center.
// A zero angle leaves the view untouched.
func applyRotation(ctx *canvas.Context, rotation float64, width, height int) {
	rot := math.Mod(rotation, 360)
	if rot == 0 {
		return
	}
	ctx.SetView(canvas.Identity.RotateAbout(rot, float64(width)/2, float64(height)/2))
}

// rasterize renders the scene into an RGBA image at one pixel per unit.
func rasterize(c *canvas.Canvas, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := rasterizer.New(img, canvas.DPMM(1.0))
	c.Render(r)
	return img
}

// strokeStyle prepares the context for white polyline drawing.
func strokeStyle(ctx *canvas.Context, width float64) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(color.White)
	ctx.SetStrokeWidth(width)
}
