package ibctesting

import "github.com/tendermint/tendermint/libs/log"

var _ log.Logger = (*RecordingLogger)(nil)

// RecordingLogger is a log.Logger keeping every entry in memory.
type RecordingLogger struct {
	DebugLogs  []LogEntry
	InfoLogs   []LogEntry
	ErrorLogs  []LogEntry
	WithRecord []interface{}
}

// LogEntry is a struct that contains the message and key values passed to the logger
type LogEntry struct {
	Message string
	Params  []interface{}
}

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Debug(msg string, keyvals ...interface{}) {
	l.DebugLogs = append(l.DebugLogs, LogEntry{Message: msg, Params: keyvals})
}

func (l *RecordingLogger) Info(msg string, keyvals ...interface{}) {
	l.InfoLogs = append(l.InfoLogs, LogEntry{Message: msg, Params: keyvals})
}

func (l *RecordingLogger) Error(msg string, keyvals ...interface{}) {
	l.ErrorLogs = append(l.ErrorLogs, LogEntry{Message: msg, Params: keyvals})
}

// With records keyvals and returns the same logger.
func (l *RecordingLogger) With(keyvals ...interface{}) log.Logger {
	l.WithRecord = append(l.WithRecord, keyvals...)
	return l
}

// Messages returns the messages logged at info level.
func (l *RecordingLogger) Messages() []string {
	msgs := make([]string, len(l.InfoLogs))
	for i, entry := range l.InfoLogs {
		msgs[i] = entry.Message
	}
	return msgs
}
