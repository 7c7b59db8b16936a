package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, New(0).Limit())
	assert.Equal(t, DefaultLimit, New(-3).Limit())
	assert.Equal(t, 7, New(7).Limit())
}

func TestAppendEvictsOldest(t *testing.T) {
	l := New(3)
	for i := 0; i < 5; i++ {
		l.Append(Turn{User: fmt.Sprintf("q%d", i), Bot: fmt.Sprintf("a%d", i)})
	}

	require.Equal(t, 3, l.Len())
	turns := l.Turns()
	assert.Equal(t, "q2", turns[0].User)
	assert.Equal(t, "q4", turns[2].User)
}

func TestTurnsReturnsCopy(t *testing.T) {
	l := New(2)
	l.Append(Turn{User: "hi", Bot: "hello"})

	turns := l.Turns()
	turns[0].User = "changed"

	assert.Equal(t, "hi", l.Turns()[0].User)
}

func TestFromTurnsKeepsNewest(t *testing.T) {
	history := []Turn{{User: "1"}, {User: "2"}, {User: "3"}, {User: "4"}}

	l := FromTurns(history, 2)

	assert.Equal(t, []Turn{{User: "3"}, {User: "4"}}, l.Turns())
}

func TestTranscript(t *testing.T) {
	l := New(10)
	assert.Equal(t, "", l.Transcript())

	l.Append(Turn{User: "How many leave days?", Bot: "20."})
	l.Append(Turn{User: "Sick leave?", Bot: "10."})

	assert.Equal(t, "You: How many leave days?\nBot: 20.\nYou: Sick leave?\nBot: 10.", l.Transcript())
}
