// Package mural renders a continuously animated, procedurally generated
// abstract composition — drifting circles, rotating triangles, skewed
// rectangles, hand-drawn strokes, and rigid clusters of primitives —
// onto a full-window [Ebitengine] surface. It is meant as decorative
// background art, not a general graphics engine.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window,
// builds a composition covering it, and drives the animation loop:
//
//	if err := mural.Run(mural.RunConfig{
//		Title: "Backdrop", Width: 1280, Height: 800,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, create a [Composition] with [New] and drive it as an
// [ebiten.Game] from your own loop:
//
//	c := mural.New(1280, 800)
//	if err := ebiten.RunGame(c); err != nil { ... }
//
// A composition starts running as soon as it is constructed. Clicking
// (or tapping) the surface toggles between running and paused; hosts can
// do the same programmatically with [Composition.Pause],
// [Composition.Resume], and [Composition.Toggle], and tear everything
// down with [Composition.Destroy].
//
// # Scene model
//
// Each composition owns a fixed scene generated once at startup: every
// shape, stroke, and group samples its initial attributes from fixed
// ranges over the default eight-color [Palette]. Records are mutated in
// place each frame by the animation clock and never added or removed.
// All work happens on the game loop's single goroutine.
//
// [Ebitengine]: https://ebitengine.org
package mural
