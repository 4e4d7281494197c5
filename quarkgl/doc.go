// Package quarkgl is a minimal, predictable software 3D renderer built on vecmath.
//
// QuarkGL is intended for visualization: meshes, simple scenes, and interactive views
// (orbit/zoom/pan). It is not a game engine and does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// Transforms are vecmath matrices composed as proj*view*model and applied to
// column vectors. Screen mapping follows vecmath.Project, so a point drawn by the
// renderer lands on the pixel Project reports for it (with y flipped for raster
// rows), and picking goes back through vecmath.Unproject.
//
// The renderer draws into a caller-provided Target. The library does not require a
// full framebuffer and avoids allocations in the render hot path.
package quarkgl
