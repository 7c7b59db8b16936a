package qa

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/prompts"
	"gopkg.in/yaml.v3"
)

// ErrNoPrompt is returned when a prompt template is blank.
var ErrNoPrompt = errors.New("prompt template is empty")

// ContextVar is the template variable that receives the chunk text.
const ContextVar = "context"

const defaultSimple = `Based on the following text, generate 2 factual question-answer pairs that have SHORT, direct answers.

Text: {{.context}}

Format each pair as "Q: [question]" on one line and "A: [answer]" on the next line, with an empty line between pairs.`

const defaultComplex = `Based on the following text, generate 2 complex question-answer pairs. These should require deeper analysis or broader understanding of the content.

Text: {{.context}}

Format each pair as "Q: [question]" on one line and "A: [answer]" on the next line, with an empty line between pairs.
Make sure the answers are comprehensive and at least 2-3 sentences long.`

// Templates holds the two prompts issued per chunk, in Go template syntax.
type Templates struct {
	Simple  string `yaml:"simple"`
	Complex string `yaml:"complex"`
}

func DefaultTemplates() Templates {
	return Templates{Simple: defaultSimple, Complex: defaultComplex}
}

// LoadTemplates reads a YAML override file. An empty path or a missing key
// keeps the default for that template.
func LoadTemplates(path string) (Templates, error) {
	t := DefaultTemplates()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, fmt.Errorf("read prompts file: %w", err)
	}
	var override Templates
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Templates{}, fmt.Errorf("parse prompts file: %w", err)
	}
	if strings.TrimSpace(override.Simple) != "" {
		t.Simple = override.Simple
	}
	if strings.TrimSpace(override.Complex) != "" {
		t.Complex = override.Complex
	}
	return t, nil
}

type compiled struct {
	simple  prompts.PromptTemplate
	complex prompts.PromptTemplate
}

func (t Templates) compile() (compiled, error) {
	if strings.TrimSpace(t.Simple) == "" || strings.TrimSpace(t.Complex) == "" {
		return compiled{}, ErrNoPrompt
	}
	c := compiled{
		simple:  prompts.NewPromptTemplate(t.Simple, []string{ContextVar}),
		complex: prompts.NewPromptTemplate(t.Complex, []string{ContextVar}),
	}
	// Surface template syntax errors at construction rather than mid-run.
	if _, err := c.simple.Format(map[string]any{ContextVar: ""}); err != nil {
		return compiled{}, fmt.Errorf("simple prompt: %w", err)
	}
	if _, err := c.complex.Format(map[string]any{ContextVar: ""}); err != nil {
		return compiled{}, fmt.Errorf("complex prompt: %w", err)
	}
	return c, nil
}
