package viewer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"trameview/internal/domain"
)

// Navigator steps through a frame sequence one frame at a time. The index
// is -1 while the sequence is empty and otherwise stays in [0, Len()-1].
type Navigator struct {
	frames []domain.Frame
	index  int
}

// New creates a Navigator positioned on the first frame.
func New(frames []domain.Frame) *Navigator {
	n := &Navigator{}
	n.Replace(frames)
	return n
}

// Replace swaps in a new sequence and rewinds to its first frame.
func (n *Navigator) Replace(frames []domain.Frame) {
	n.frames = frames
	n.index = 0
	n.clamp()
}

func (n *Navigator) Len() int {
	return len(n.frames)
}

func (n *Navigator) Index() int {
	return n.index
}

// Current returns the displayed frame, or false if there is none.
func (n *Navigator) Current() (domain.Frame, bool) {
	if n.index < 0 || n.index >= len(n.frames) {
		return domain.Frame{}, false
	}
	return n.frames[n.index], true
}

// Next advances one frame. Past the end it falls back to the last frame.
func (n *Navigator) Next() {
	n.index++
	n.clamp()
}

// Previous steps back one frame, never below the first.
func (n *Navigator) Previous() {
	n.index--
	if n.index < 0 && len(n.frames) > 0 {
		n.index = 0
	}
	n.clamp()
}

// Seek jumps to frame i, clamped to the sequence bounds.
func (n *Navigator) Seek(i int) {
	n.index = i
	if n.index < 0 && len(n.frames) > 0 {
		n.index = 0
	}
	n.clamp()
}

func (n *Navigator) clamp() {
	if n.index >= len(n.frames) {
		n.index = len(n.frames) - 1
	}
	if len(n.frames) == 0 {
		n.index = -1
	}
}

// Render writes the current frame the way the viewer screen shows it:
// position header, hex payload, then a debug dump of every field.
func (n *Navigator) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Trame num %d/%d\n", n.index, len(n.frames)); err != nil {
		return err
	}
	f, ok := n.Current()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", FormatPayload(f.ContenuSegment), debugRule, Dump(f))
	return err
}

const debugRule = "--------------------------DEBUG--------------------------------------"

// FormatPayload renders bytes as two-digit uppercase hex, e.g. [0A, FF].
func FormatPayload(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dump renders every field of f on one line.
func Dump(f domain.Frame) string {
	return fmt.Sprintf(
		"fn_id=%s logical_canal=%d contenu_segment=%v freq=%d localisation=%s length=%d sub_type=%d date=%s",
		optional(f.FnID), f.LogicalCanal, f.ContenuSegment, f.Freq, optional(f.Localisation),
		f.Length, f.SubType, f.Date.Format(time.RFC3339Nano),
	)
}

func optional(v *int32) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(int(*v))
}
