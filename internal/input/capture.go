package input

import "fmt"

// CaptureMode is the process-wide pointer capture state.
type CaptureMode uint8

const (
	// CaptureFree leaves the pointer visible and unconstrained.
	CaptureFree CaptureMode = iota
	// CaptureConfined keeps the pointer visible but inside the window.
	CaptureConfined
	// CaptureCaptured hides the pointer and reports only relative motion.
	CaptureCaptured
)

func (m CaptureMode) String() string {
	switch m {
	case CaptureFree:
		return "free"
	case CaptureConfined:
		return "confined"
	case CaptureCaptured:
		return "captured"
	default:
		return fmt.Sprintf("capture(%d)", uint8(m))
	}
}

// CaptureSetter changes the pointer capture mode.
type CaptureSetter interface {
	SetCaptureMode(CaptureMode)
}

// CaptureState remembers the current mode and every change made to it. Hosts
// without a real pointer use it directly.
type CaptureState struct {
	Mode    CaptureMode
	History []CaptureMode
}

func (c *CaptureState) SetCaptureMode(m CaptureMode) {
	c.Mode = m
	c.History = append(c.History, m)
}
