// Package modal provides a declarative section-based dialog builder for the
// board's overlay dialogs.
//
// A dialog is composed of stacked sections and rendered centered on the
// screen. Keyboard handling is automatic: Tab/Shift+Tab and Left/Right move
// focus across buttons, Enter activates the focused button (or the primary
// action when nothing is focused), Esc yields "close".
//
//	d := modal.New("Delete measurement", modal.WithWidth(50)).
//	    AddSection(modal.Text("Remove this entry? This cannot be undone.")).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.Buttons(
//	        modal.BtnDanger(" Delete ", "delete"),
//	        modal.Btn(" Cancel ", "close"),
//	    ))
//
//	// In Update():
//	if action := d.HandleKey(keyMsg); action != "" { ... }
//
//	// In View():
//	overlay := d.Render(screenW, screenH)
//
// Built-in sections: Text (auto-wrapped), Spacer, KeyValue (aligned label
// rows), Buttons.
package modal
