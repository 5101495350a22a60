// Package transport delivers per-frame render progress to external
// collaborators: the log, WebSocket clients, or a UDP listener. The
// driver sends one event per frame and never consumes a reply.
package transport

// Transport defines a generic interface for sending progress events.
// Implementations should be safe for concurrent use.
type Transport interface {
	Send(data any) error
	Close() error
}

// Progress is the per-frame event emitted by the sequence driver.
type Progress struct {
	Frame      int     `json:"frame"`      // 1-based frame just rendered
	Total      int     `json:"total"`      // total frames in the sequence
	Feature    float64 `json:"feature"`    // mean smoothed spectrum value
	Visualizer string  `json:"visualizer"` // visual style name
}

// Multi fans one event out to several transports. Send returns the
// first error but still attempts every transport.
type Multi struct {
	Transports []Transport
}

// Send implements Transport.
func (m *Multi) Send(data any) error {
	var first error
	for _, t := range m.Transports {
		if err := t.Send(data); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close implements Transport.
func (m *Multi) Close() error {
	var first error
	for _, t := range m.Transports {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var _ Transport = (*Multi)(nil)
