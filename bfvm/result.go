package bfvm

import (
	"io"
	"strings"
)

type Result struct {
	Output         string
	Steps          int
	Reads          int
	InputExhausted int
	TapeLen        int
}

// Run loads and executes source. Output is only returned when the whole program succeeds.
func Run(source string, input io.Reader, config Config) (*Result, error) {
	program, err := Load(source)
	if err != nil {
		return nil, err
	}
	m := NewMachine(program, input, config)
	if err := m.Run(); err != nil {
		return nil, err
	}
	return m.Result(), nil
}

func Interpret(source string, input io.Reader) (string, error) {
	result, err := Run(source, input, DefaultConfig())
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Result assembles the output of a finished machine. Each output value is one code point.
func (m *Machine) Result() *Result {
	return &Result{
		Output:         outputText(m.Output),
		Steps:          m.Steps,
		Reads:          m.Reads,
		InputExhausted: m.InputExhausted,
		TapeLen:        len(m.Tape),
	}
}

func outputText(values []byte) string {
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		b.WriteRune(rune(v))
	}
	return b.String()
}
