// Package ui renders the dashboard grid and translates key input into
// engine events with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: Root model owning the layout machine, cursor, and modal overlay
//   - BoardView: Pure renderer of a layout.State snapshot (adorner colors, span badges)
//   - EditPanelModal: Modal for editing a panel's opaque JSON payload
//
// The engine itself never touches this package; the app dispatches events
// into layout.Machine and redraws from the returned snapshot.
package ui
