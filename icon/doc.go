// Package icon decides and applies horizontal mirroring for icons in
// right-to-left layouts.
//
// # Icon Kinds
//
// Icons are classified by [Kind]:
//
//   - Directional - arrows, chevrons, back/forward; flip under RTL
//   - Text - depict written content; flip with the writing direction
//   - Neutral - search, settings, etc.; never flip
//
// # Runtime Transforms
//
// [GetTransform] and [Style] produce the scaleX:-1 transform that a
// rendering layer applies at draw time:
//
//	t := icon.GetTransform(icon.Directional, direction.RTL)
//	// Transform{ShouldFlip: true, Transform: []ScaleX{{-1}}}
//
// # Bitmap Mirroring
//
// [Flip] mirrors decoded image assets directly, for pipelines that
// bake mirrored variants ahead of time rather than transforming at
// render time.
package icon
