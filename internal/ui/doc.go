// Package ui is the Bubble Tea front end driven by the navigation back
// stack.
//
// Core abstractions:
//   - Screen: a destination with its own model, update, view (Elm-style)
//   - Navigator: the navigation controller; owns the back stack, translates
//     navigation messages into push/pop/unwind, re-reads the top to render
//   - AppModel: root tea.Model: routes keys, hosts the filter sheet overlay,
//     renders the active screen plus tab bar and status line
//   - Screens: BrowseScreen (filterable list), DetailScreen, AboutScreen
//   - FilterSheet: modal text input overlay with dismiss on esc
package ui
