// Package validator audits the distribution metadata of repository subtrees
// in a single depth-first pass.
//
// The Engine is driven by a host traversal through Enter (pre-order) and Exit
// (post-order) calls. Nodes matched by an include or exclude rule open a
// tracked subtree; metadata is captured when the subtree's anchor node is
// visited, and the subtree is validated once its traversal is complete.
//
// # Anchors
//
// For most nodes the anchor is the matched node itself. Pages and templates
// keep their metadata in the jcr:content child, so a matched page opens a
// subtree anchored at <page>/jcr:content which is captured one level deeper.
//
// # Closing Subtrees
//
// Completion is detected by counting: every Enter increments the nesting level
// of all open subtrees and every Exit decrements it. A subtree closes on the
// Exit that brings its level below zero. The path passed to Exit is not used,
// as hosts do not report it reliably for every subtree shape.
//
// # Validation Policy
//
// Included subtrees must carry, for every configured agent, the action
// "Activate" and a distribution date not older than the comparison date.
// Excluded subtrees must carry no distribution metadata at all.
//
// The engine is not safe for concurrent use; one engine serves one traversal.
package validator
