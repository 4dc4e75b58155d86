package board

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mkarpov/vitals/internal/markup"
)

// copiedFeedback is the transient tip text shown after a successful copy.
const copiedFeedback = "Copied!"

// copyFeedbackDoneMsg restores an element's tip text after the feedback
// period. gen ties the message to the copy that scheduled it; a re-copy
// bumps the generation so the superseded restore is ignored.
type copyFeedbackDoneMsg struct {
	el  *markup.Element
	gen int
}

// pendingRestore is the tip state captured before the first copy of a burst.
// had distinguishes a previously absent tip from a present-but-empty one.
type pendingRestore struct {
	prev string
	had  bool
}

// ClipboardController copies declared text on activation. A literal copy
// value wins over a target reference; empty resolved text is a no-op. The
// platform clipboard is tried first with a legacy external-tool fallback.
// Feedback reuses the tooltip text attribute for a short fixed period.
type ClipboardController struct {
	doc      *markup.Document
	feedback time.Duration
	emit     func(tea.Cmd)
	log      *zap.Logger

	gens    map[*markup.Element]int
	pending map[*markup.Element]pendingRestore

	// write and fallback are swappable for tests.
	write    func(string) error
	fallback func(string) error
}

func newClipboardController(doc *markup.Document, feedback time.Duration, emit func(tea.Cmd), log *zap.Logger) *ClipboardController {
	return &ClipboardController{
		doc:      doc,
		feedback: feedback,
		emit:     emit,
		log:      log,
		gens:     make(map[*markup.Element]int),
		pending:  make(map[*markup.Element]pendingRestore),
		write:    clipboard.WriteAll,
		fallback: legacyCopy,
	}
}

// Attach registers the delegated click handler. Call once.
func (c *ClipboardController) Attach() {
	c.doc.On(markup.Click, func(ev *markup.Event) {
		el := ev.Target.Closest(func(e *markup.Element) bool {
			return e.HasAttr(AttrCopy) || e.HasAttr(AttrCopyTarget)
		})
		if el == nil {
			return
		}
		ev.PreventDefault()

		text := c.resolveText(el)
		if text == "" {
			return
		}

		if err := c.write(text); err != nil {
			if err2 := c.fallback(text); err2 != nil {
				c.log.Warn("clipboard write failed",
					zap.NamedError("primary", err),
					zap.NamedError("fallback", err2))
				return
			}
		}

		c.showFeedback(el)
	})
}

// resolveText resolves the copy payload: the literal attribute wins, then the
// referenced element's value or text.
func (c *ClipboardController) resolveText(el *markup.Element) string {
	if text := el.Attr(AttrCopy); text != "" {
		return text
	}
	ref := c.doc.ByID(strings.TrimPrefix(el.Attr(AttrCopyTarget), "#"))
	if ref == nil {
		return ""
	}
	if ref.Value != "" {
		return ref.Value
	}
	return ref.Text
}

// showFeedback swaps the element's tip text for the feedback period, then
// restores whatever was there before, including an empty or absent tip. The
// pre-copy text is captured only once per burst: a re-copy while the feedback
// is still showing extends the period without capturing the feedback text
// itself as the thing to restore.
func (c *ClipboardController) showFeedback(el *markup.Element) {
	if _, showing := c.pending[el]; !showing {
		c.pending[el] = pendingRestore{prev: el.Attr(AttrTip), had: el.HasAttr(AttrTip)}
	}
	c.gens[el]++
	gen := c.gens[el]
	el.SetAttr(AttrTip, copiedFeedback)
	c.emit(tea.Tick(c.feedback, func(time.Time) tea.Msg {
		return copyFeedbackDoneMsg{el: el, gen: gen}
	}))
}

// Update restores tip text when the feedback period elapses. Restores from a
// superseded copy are stale and ignored.
func (c *ClipboardController) Update(msg tea.Msg) {
	done, ok := msg.(copyFeedbackDoneMsg)
	if !ok {
		return
	}
	if done.gen != c.gens[done.el] {
		return
	}
	p, ok := c.pending[done.el]
	if !ok {
		return
	}
	delete(c.pending, done.el)
	if p.had {
		done.el.SetAttr(AttrTip, p.prev)
	} else {
		done.el.RemoveAttr(AttrTip)
	}
}

// legacyCopy pipes text into the platform's copy tool. Used when the
// clipboard API path is unavailable.
// Uses pbcopy on macOS, xclip or xsel on Linux, clip.exe on Windows.
func legacyCopy(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := stdin.Write([]byte(text)); err != nil {
		return err
	}

	if err := stdin.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}
