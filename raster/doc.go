// Package raster is a small software rasterizer for flat 2D triangle lists.
//
// It mirrors the fixed part of a GL draw call: the caller fills a position buffer
// (xyz per vertex) and a color buffer (rgba per vertex), supplies one model-view
// matrix, and the renderer clears the target and fills every triangle with
// interpolated vertex colors.
//
// Pipeline (fixed):
//
//	Batch → ModelView → Viewport → Rasterization → Target.
//
// There is no projection, no depth test and no face culling. Positions are taken to
// be in normalized device coordinates after the model-view transform.
package raster
