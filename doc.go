// Package spyglass is a developer-facing debugging overlay and console
// inspector for retained-mode 2D display lists built on the stage package.
//
// An Inspector binds to one stage and offers two facilities:
//
//   - An on-screen overlay that annotates display objects with bounding
//     rectangles, position and registration markers, dimension labels, and a
//     per-object property panel, rebuilt from scratch on every redraw while
//     live refresh is enabled.
//   - A console dump engine that locates display objects by id, name, or
//     custom predicate and prints a structured report of a node and its
//     descendants.
//
// The overlay lives in a single container appended as the stage's last child
// while showing. The traversal that builds it never descends into that layer,
// tolerates nodes with undefined bounds, and visits the children of filtered
// and boundless nodes alike.
package spyglass
