package room

import (
	"sasku-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent messages and forwards them to LogChan
// NOTE: the lock must be held
func (s *Session) addLogMessages(messages ...*playable.LogMessage) {
	if len(messages) == 0 {
		return
	}

	m := append(s.logMessages, messages...)
	if count := len(m); count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m

	select {
	case s.logChan <- messages:
	default:
		s.logger.Warn("log channel is full, dropping messages")
	}
}

// recentLogMessages returns a copy of the kept messages
// NOTE: the lock must be held
func (s *Session) recentLogMessages() []*playable.LogMessage {
	return append([]*playable.LogMessage(nil), s.logMessages...)
}
