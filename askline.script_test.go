package askline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScriptYAML = `version: 1
fields:
  - name: age
    type: int
    prompt: "Age"
    hint: true
  - name: height
    type: float64
    prompt: "Height: "
  - name: timeout
    type: duration
    prompt: "Timeout: "
`

func TestLoadScript(t *testing.T) {
	script, err := LoadScript([]byte(testScriptYAML))
	require.NoError(t, err)

	assert.Equal(t, 1, script.Version)
	require.Len(t, script.Fields, 3)
	assert.Equal(t, "age", script.Fields[0].Name)
	assert.Equal(t, "int", script.Fields[0].Type)
	assert.True(t, script.Fields[0].Hint)
	assert.False(t, script.Fields[1].Hint)
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "::\n:::"},
		{"no fields", "version: 1\nfields: []\n"},
		{"future version", "version: 99\nfields:\n  - {name: a, type: int}\n"},
		{"empty field name", "version: 1\nfields:\n  - {name: \"\", type: int}\n"},
		{"duplicate field name", "version: 1\nfields:\n  - {name: a, type: int}\n  - {name: a, type: bool}\n"},
		{"unknown type", "version: 1\nfields:\n  - {name: a, type: complex128}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestScript_ExportRoundTrip(t *testing.T) {
	script, err := LoadScript([]byte(testScriptYAML))
	require.NoError(t, err)

	data, err := script.Export()
	require.NoError(t, err)

	again, err := LoadScript(data)
	require.NoError(t, err)
	assert.Equal(t, script, again)
}

func TestScript_Run(t *testing.T) {
	script, err := LoadScript([]byte(testScriptYAML))
	require.NoError(t, err)

	engine, out, errOut := testEngine(t, "oops\n41\n1.85\n2m30s\n")
	answers, err := script.Run(context.Background(), engine)
	require.NoError(t, err)

	require.Len(t, answers, 3)
	assert.Equal(t, Answer{Name: "age", TypeName: "int", Value: 41}, answers[0])
	assert.Equal(t, Answer{Name: "height", TypeName: "float64", Value: 1.85}, answers[1])
	assert.Equal(t, Answer{Name: "timeout", TypeName: "time.Duration", Value: 150 * time.Second}, answers[2])

	age, ok := answers.Get("age")
	assert.True(t, ok)
	assert.Equal(t, 41, age)

	_, ok = answers.Get("missing")
	assert.False(t, ok)

	// per-field hint rendering: first field hinted, second verbatim
	assert.Contains(t, out.String(), "Age (int): ")
	assert.Contains(t, out.String(), "Height: ")
	assert.Contains(t, errOut.String(), `invalid entry "oops"`)
}

func TestScript_RunAbortsOnStreamEnd(t *testing.T) {
	script, err := LoadScript([]byte(testScriptYAML))
	require.NoError(t, err)

	engine, _, _ := testEngine(t, "41\n")
	answers, err := script.Run(context.Background(), engine)

	require.Error(t, err)
	assert.True(t, IsStreamFatal(err))
	require.Len(t, answers, 1, "answers collected before the abort are returned")
	assert.Equal(t, "age", answers[0].Name)
}

func TestScript_RunValidates(t *testing.T) {
	script := &Script{Version: 1, Fields: []ScriptField{{Name: "a", Type: "nope"}}}
	engine, _, _ := testEngine(t, "")

	_, err := script.Run(context.Background(), engine)
	require.Error(t, err)
}

func TestScript_FloatAlias(t *testing.T) {
	script, err := LoadScript([]byte("version: 1\nfields:\n  - {name: x, type: float, prompt: \"x: \"}\n"))
	require.NoError(t, err)

	engine, _, _ := testEngine(t, "3.14\n")
	answers, err := script.Run(context.Background(), engine)
	require.NoError(t, err)
	assert.Equal(t, 3.14, answers[0].Value)
}
