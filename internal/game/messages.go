package game

import "strings"

// MsgPriority controls the colour of a line in the message feed.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // level ups, new games
	MsgWarning                     // lost a ship
	MsgCritical                    // game over
	MsgRecord                      // new high score
)

// Tone maps the priority onto a label colour.
func (p MsgPriority) Tone() Tone {
	switch p {
	case MsgWarning:
		return ToneWarning
	case MsgCritical:
		return ToneCritical
	case MsgRecord:
		return ToneRecord
	default:
		return ToneInfo
	}
}

// Message is a single line in the feed.
type Message struct {
	Text     string
	Priority MsgPriority
	Frame    uint64 // frame the line was added on
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize messages.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, evicting the oldest if full. Long text is wrapped
// onto several lines.
func (l *MessageLog) Add(text string, priority MsgPriority, frame uint64) {
	const maxWidth = 40
	for _, line := range wrapText(text, maxWidth) {
		msg := Message{Text: line, Priority: priority, Frame: frame}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Since returns up to n of the latest messages added on or after frame.
func (l *MessageLog) Since(frame uint64, n int) []Message {
	recent := l.Recent(n)
	for i, m := range recent {
		if m.Frame >= frame {
			return recent[i:]
		}
	}
	return nil
}

// wrapText splits text into lines no longer than maxWidth. Words longer than
// maxWidth get a line of their own.
func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}
