package app

import "log"

// LogLabel writes the displayed FPS to a logger whenever it changes.
type LogLabel struct {
	logger *log.Logger
	text   string
}

// NewLogLabel returns a label that reports through logger, or the standard
// logger when nil.
func NewLogLabel(logger *log.Logger) *LogLabel {
	if logger == nil {
		logger = log.Default()
	}
	return &LogLabel{logger: logger}
}

// SetText records text and logs it if it differs from the previous value.
func (l *LogLabel) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.logger.Printf("fps %s", text)
}

// Text returns the last displayed value.
func (l *LogLabel) Text() string { return l.text }
