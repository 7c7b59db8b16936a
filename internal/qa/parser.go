package qa

import "strings"

// Pair is one question/answer record.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type state int

const (
	seekQuestion state = iota
	seekAnswer
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
)

// Parser turns line-oriented "Q:"/"A:" model output into pairs.
//
// In seekQuestion every line that does not start with "Q:" is skipped. A "Q:"
// line moves to seekAnswer. In seekAnswer an "A:" line completes the pair;
// any other line, including another "Q:", drops the pending question and is
// consumed. Prefixes must start the line; the text after them is trimmed.
type Parser struct {
	state   state
	pending string
	pairs   []Pair
}

func NewParser() *Parser { return &Parser{} }

// Feed advances the machine by one line.
func (p *Parser) Feed(line string) {
	switch p.state {
	case seekQuestion:
		if strings.HasPrefix(line, questionPrefix) {
			p.pending = strings.TrimSpace(line[len(questionPrefix):])
			p.state = seekAnswer
		}
	case seekAnswer:
		if strings.HasPrefix(line, answerPrefix) {
			p.pairs = append(p.pairs, Pair{
				Question: p.pending,
				Answer:   strings.TrimSpace(line[len(answerPrefix):]),
			})
		}
		p.pending = ""
		p.state = seekQuestion
	}
}

// Pairs returns the pairs completed so far.
func (p *Parser) Pairs() []Pair {
	return p.pairs
}

// Parse runs a fresh parser over output split into lines.
func Parse(output string) []Pair {
	p := NewParser()
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		p.Feed(line)
	}
	return p.Pairs()
}
