package adapter

import "context"

// StaticDisplayDetector reports a fixed display. An empty name means no VR
// display is presenting.
type StaticDisplayDetector struct {
	Name string
}

// PresentingDisplay implements [DisplayDetector].
func (d StaticDisplayDetector) PresentingDisplay(context.Context) (string, bool, error) {
	return d.Name, d.Name != "", nil
}
