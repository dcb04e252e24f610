// Package anim drives time-based interpolation of scalar values for the TUI.
//
// Core abstractions:
//   - Value: an animatable float64 handle owned by one component
//   - Animation: Timing, Parallel, Sequence, Loop and Delay compose into trees
//   - Driver: the owner-scoped set of running animations, advanced by FrameMsg
//
// Nothing in this package starts timers of its own. Progress is advanced only
// when the owner forwards a FrameMsg produced by Tick, so every completion
// callback runs inside Bubble Tea's Update loop.
package anim
