// Package ui is the Bubble Tea front end: the root model, the screen
// transition controller and the four screens.
//
// Core pieces:
//   - View: a screen or overlay with its own model, update, view (Elm-style)
//   - TransitionController: owns the active screen and the shell's
//     collapse/expand animation; the only place navigation happens
//   - Stage: holds the ScreenWrapper of the active screen and of the one
//     still leaving, so at most one screen renders at a time
//   - ScreenWrapper: mounts its child while active and plays its enter and
//     exit animation; children are torn down only after the exit finishes
//   - FocusManager: rotates focus across fields and buttons of a screen
//   - Overlay: modal dialogs above the stage
//   - KeyHandler: global bindings, including the C-x leader sequences
//
// All animation is driven by one frame tick chain (anim.FrameMsg) that runs
// only while something animates.
package ui
