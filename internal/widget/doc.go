// Package widget holds the state container behind the bill-splitting widget.
//
// A Controller owns the friend list, the current selection, the add-friend
// form visibility and the draft values of both forms. Front-ends translate
// their input (HTTP form posts, RPCs, key presses) into Controller events.
// Each event runs to completion before the next one starts, after which
// subscribed observers receive a Snapshot of the resulting state.
//
// Invalid form submissions are silent no-ops: the event reports that nothing
// happened and the drafts stay in place for correction.
package widget
