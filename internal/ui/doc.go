// Package ui contains the Bubble Tea program that drives the training menu.
// The Model type focuses on message orchestration while dedicated helpers own
// key handling, search input, rendering and backend updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated into controller buttons by the KeyMap and
//     handed to menu.App, which owns page transitions and cursor movement.
//     The search overlay and the reset-all confirmation intercept keys before
//     they reach the app.
//   - After every update the model compares the serialized selections with
//     the last snapshot and hands changes to the backend publisher.
//
// State ownership:
//   - menu.App holds every tab, submenu, toggle and slider.
//   - internal/ui/state.Search tracks the query and results of the search
//     overlay.
//   - Saving defaults runs through the internal/ui/command bus so disk writes
//     happen off the update loop.
//
// Backend interactions:
//   - A backend.Service polls the input file and reports published snapshots;
//     Update waits for those events and hands them to the dispatcher, which
//     applies incoming selections to the app.
package ui
