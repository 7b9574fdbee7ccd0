package askline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Script is a declarative, ordered questionnaire: a list of typed prompts
// that one engine runs top to bottom, each field with its own independent
// retry loop.
//
// YAML format:
//
//	version: 1
//	fields:
//	  - name: age
//	    type: int
//	    prompt: "Your age"
//	    hint: true
//	  - name: height
//	    type: float64
//	    prompt: "Height in meters: "
type Script struct {
	Version int           `yaml:"version"`
	Fields  []ScriptField `yaml:"fields"`
}

// ScriptField declares one value request within a script.
type ScriptField struct {
	// Name identifies the answer; must be unique within the script.
	Name string `yaml:"name"`

	// Type is the destination type name (see scriptTypes).
	Type string `yaml:"type"`

	// Prompt is displayed before each read attempt; may be empty.
	Prompt string `yaml:"prompt"`

	// Hint enables "<prompt> (<type>): " rendering for this field even when
	// the engine renders prompts verbatim.
	Hint bool `yaml:"hint,omitempty"`
}

// Answer holds one collected value.
type Answer struct {
	Name     string
	TypeName string
	Value    any
}

// Answers is an ordered list of collected values.
type Answers []Answer

// Get returns the value for a field name.
func (a Answers) Get(name string) (any, bool) {
	for _, ans := range a {
		if ans.Name == name {
			return ans.Value, true
		}
	}
	return nil, false
}

// scriptTypes maps script type names to destination factories.
var scriptTypes = map[string]func() any{
	"string":   func() any { return new(string) },
	"bool":     func() any { return new(bool) },
	"int":      func() any { return new(int) },
	"int64":    func() any { return new(int64) },
	"uint":     func() any { return new(uint) },
	"uint64":   func() any { return new(uint64) },
	"float":    func() any { return new(float64) },
	"float64":  func() any { return new(float64) },
	"duration": func() any { return new(time.Duration) },
}

// LoadScript decodes and validates a YAML script.
func LoadScript(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, NewScriptError(ErrMsgScriptDecode, err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks the script's version, field names and types.
func (s *Script) Validate() error {
	if s.Version > ScriptVersion {
		return NewScriptVersionError(s.Version)
	}
	if len(s.Fields) == 0 {
		return NewScriptError(ErrMsgScriptNoFields, nil)
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "" {
			return NewScriptFieldError(ErrMsgScriptEmptyName, field.Name)
		}
		if seen[field.Name] {
			return NewScriptFieldError(ErrMsgScriptDupName, field.Name)
		}
		seen[field.Name] = true

		if _, ok := scriptTypes[field.Type]; !ok {
			return NewScriptFieldError(ErrMsgScriptUnknownType, field.Name)
		}
	}
	return nil
}

// Export encodes the script back to YAML.
func (s *Script) Export() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, NewScriptError(ErrMsgScriptEncodeFailed, err)
	}
	return data, nil
}

// Run executes the script's fields in declared order on e, returning the
// answers in the same order. A fatal stream error aborts at the failing
// field; answers already collected are returned alongside the error.
func (s *Script) Run(ctx context.Context, e *Engine) (Answers, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	e.logger.Debug(LogMsgScriptStart, zap.Int(LogFieldFields, len(s.Fields)))

	answers := make(Answers, 0, len(s.Fields))
	for _, field := range s.Fields {
		dst := scriptTypes[field.Type]()

		var opts []AskOption
		if field.Hint {
			opts = append(opts, WithHint(true))
		}
		if err := AskInto(ctx, e, dst, field.Prompt, opts...); err != nil {
			return answers, err
		}

		value, typeName := deref(dst)
		answers = append(answers, Answer{Name: field.Name, TypeName: typeName, Value: value})
	}

	e.logger.Debug(LogMsgScriptDone, zap.Int(LogFieldFields, len(answers)))
	return answers, nil
}
