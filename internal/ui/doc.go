// Package ui contains the Bubble Tea model that drives the directory prompt.
// Model handles message orchestration. Dedicated helpers own input
// classification, navigation and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with one message at a time. Messages are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Key presses are translated into keys.Event values and classified against
//     the current mode (browsing or searching). Search edits live in
//     input.go and commits in navigation.go.
//   - A commit ends any open search, then hands the selected choice to the
//     nav.Router. A traversal swaps in a freshly listed directory. Reaching a
//     file records the relative path and quits the program.
//
// Rendering is a pure function of a ViewModel snapshot, so view tests do not
// need a running program.
package ui
