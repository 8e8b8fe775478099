// Package ui composes the lexterm terminal client with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - AppMode: top-level router between the auth screen and the workspace
//   - Tab: workspace panel selector (upload, documents, compare, chat)
//   - OverlayStack: modal views (command palette, confirms, summary) with dismiss keys
//   - KeybindRegistry/KeyHandler: SPC-leader key sequences with per-mode hints
//   - Toasts: transient status notices with per-toast expiry
//
// Everything that looks like analysis (summaries, diffs, answers) is fetched
// from the remote service by commands in app_commands.go; views only render.
package ui
