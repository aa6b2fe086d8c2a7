package ui

// PushScreenMsg asks the app to push a new screen onto the back stack.
type PushScreenMsg struct {
	Screen Screen
}

// BackMsg pops the current screen. No-op at the root.
type BackMsg struct{}

// GoHomeMsg unwinds the stack to the root screen (bottom-tab behavior:
// re-selecting the home tab collapses the history above it).
type GoHomeMsg struct{}

// ShowAboutMsg pushes the about screen unless it is already on top.
type ShowAboutMsg struct{}

// ShowFilterMsg opens the filter sheet over the browse screen.
type ShowFilterMsg struct{}

// DismissSheetMsg closes the filter sheet without applying a query.
type DismissSheetMsg struct{}

// FilterAppliedMsg carries the confirmed query from the filter sheet.
type FilterAppliedMsg struct {
	Query string
}
