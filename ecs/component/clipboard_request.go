package component

// ClipboardRequest is a one-shot request to place Text on the system
// clipboard.
type ClipboardRequest struct {
	Text string
}

var ClipboardRequestComponent = NewComponent[ClipboardRequest]()
