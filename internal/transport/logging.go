package transport

import (
	applog "specviz/internal/log"
)

// LoggingTransport reports progress through the application logger.
// Frame events log at debug; a line at every 10% boundary logs at info
// so default output stays readable for long sequences.
type LoggingTransport struct {
	lastDecile int
}

// NewLoggingTransport creates a new LoggingTransport instance.
func NewLoggingTransport() *LoggingTransport {
	return &LoggingTransport{lastDecile: -1}
}

// Send implements Transport. Logging never fails to "send".
func (lt *LoggingTransport) Send(data any) error {
	p, ok := data.(Progress)
	if !ok {
		applog.Debugf("Transport: %+v", data)
		return nil
	}

	applog.Debugf("Transport: frame %d/%d (feature %.3f)", p.Frame, p.Total, p.Feature)
	if p.Total > 0 {
		decile := p.Frame * 10 / p.Total
		if decile > lt.lastDecile {
			lt.lastDecile = decile
			applog.Infof("Render: %s %d%% (%d/%d frames)", p.Visualizer, decile*10, p.Frame, p.Total)
		}
	}
	return nil
}

// Close implements Transport.
func (lt *LoggingTransport) Close() error {
	return nil
}

var _ Transport = (*LoggingTransport)(nil)
