package conversation

import "strings"

// DefaultLimit is the number of turns kept when no limit is configured.
const DefaultLimit = 50

// Turn is one exchange between the user and the bot.
type Turn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Log is a bounded, ordered record of turns. When full, Append evicts the
// oldest turn. A Log is owned by a single caller and is not safe for
// concurrent use.
type Log struct {
	limit int
	turns []Turn
}

// New returns an empty log holding at most limit turns.
func New(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// FromTurns rebuilds a log from client-supplied history, keeping the newest turns.
func FromTurns(turns []Turn, limit int) *Log {
	l := New(limit)
	for _, t := range turns {
		l.Append(t)
	}
	return l
}

// Append adds a turn and truncates from the front to stay within the limit.
func (l *Log) Append(t Turn) {
	l.turns = append(l.turns, t)
	if over := len(l.turns) - l.limit; over > 0 {
		l.turns = append(l.turns[:0:0], l.turns[over:]...)
	}
}

// Turns returns a copy of the retained turns, oldest first.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *Log) Len() int   { return len(l.turns) }
func (l *Log) Limit() int { return l.limit }

// Transcript renders the retained turns as "You:"/"Bot:" lines.
func (l *Log) Transcript() string {
	var b strings.Builder
	for i, t := range l.turns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("You: ")
		b.WriteString(t.User)
		b.WriteString("\nBot: ")
		b.WriteString(t.Bot)
	}
	return b.String()
}
