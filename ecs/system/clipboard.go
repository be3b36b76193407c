package system

import (
	"log"
	"sync"

	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"golang.design/x/clipboard"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

type systemClipboard struct {
	once sync.Once
	err  error
}

// NewSystemClipboard returns the OS clipboard. Initialization is deferred to
// the first write.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteText(text string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return c.err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// ClipboardSystem serves ClipboardRequest entities. After the first failure
// it stops trying and only drains requests.
type ClipboardSystem struct {
	cb       Clipboard
	disabled bool
}

func NewClipboardSystem(cb Clipboard) *ClipboardSystem {
	return &ClipboardSystem{cb: cb, disabled: cb == nil}
}

func (c *ClipboardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	reqs := consumeRequests(w, component.ClipboardRequestComponent.Kind())
	if len(reqs) == 0 || c.disabled {
		return
	}
	text := reqs[len(reqs)-1].Text
	if err := c.cb.WriteText(text); err != nil {
		log.Printf("clipboard: %v", err)
		c.disabled = true
	}
}
