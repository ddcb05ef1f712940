package bfvm

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestHello(t *testing.T) {
	output, err := Interpret(helloSource, nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "Hello" {
		t.Fatalf("got %q", output)
	}
}

func TestEcho(t *testing.T) {
	output, err := Interpret(",.", strings.NewReader("A"))
	if err != nil {
		t.Fatal(err)
	}
	if output != "A" {
		t.Fatalf("got %q", output)
	}

	output, err = Interpret(",.", bytes.NewReader([]byte{65}))
	if err != nil {
		t.Fatal(err)
	}
	if output != "A" {
		t.Fatalf("got %q", output)
	}
}

func TestInputExhausted(t *testing.T) {
	result, err := Run("+,.", strings.NewReader(""), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Output != "\x00" {
		t.Fatalf("got %q", result.Output)
	}
	if result.Reads != 1 || result.InputExhausted != 1 {
		t.Fatalf("got %+v", result)
	}

	// nil input behaves as exhausted
	output, err := Interpret(",.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Fatalf("got %q", output)
	}
}

func TestInputTypedNil(t *testing.T) {
	var file *os.File
	result, err := Run(",.", file, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Output != "\x00" || result.InputExhausted != 1 {
		t.Fatalf("got %+v", result)
	}

	var buf *bytes.Buffer
	output, err := Interpret(",.,.", buf)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00\x00" {
		t.Fatalf("got %q", output)
	}
}

func TestInputConsumesOneBytePerRead(t *testing.T) {
	input := strings.NewReader("abcd")
	output, err := Interpret(",.,.", iotest.OneByteReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if output != "ab" {
		t.Fatalf("got %q", output)
	}
	rest, err := io.ReadAll(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "cd" {
		t.Fatalf("got %q", rest)
	}
}

func TestInputError(t *testing.T) {
	readErr := errors.New("broken pipe")
	_, err := Run("+.,.", iotest.ErrReader(readErr), DefaultConfig())
	var e *InputError
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Index != 2 {
		t.Fatalf("got %v", e.Index)
	}
	if !errors.Is(err, readErr) {
		t.Fatalf("got %v", err)
	}
}

func TestWraparound(t *testing.T) {
	output, err := Interpret(strings.Repeat("+", 256)+".", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Fatalf("got %q", output)
	}

	output, err = Interpret("-.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "ÿ" {
		t.Fatalf("got %q", output)
	}

	output, err = Interpret("-+.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Fatalf("got %q", output)
	}
}

func TestOutputCodePoints(t *testing.T) {
	// 0xe9 is output as the code point U+00E9, not as a raw byte
	output, err := Interpret(strings.Repeat("-", 256-0xe9)+".", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "é" {
		t.Fatalf("got %q", output)
	}
}

func TestTapeGrowth(t *testing.T) {
	result, err := Run(strings.Repeat(">", 30000)+"+.", nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Output != "\x01" {
		t.Fatalf("got %q", result.Output)
	}
	if result.TapeLen != 31000 {
		t.Fatalf("got %v", result.TapeLen)
	}

	// the last initial cell does not grow the tape
	result, err = Run(strings.Repeat(">", 29999)+".", nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if result.Output != "\x00" {
		t.Fatalf("got %q", result.Output)
	}
	if result.TapeLen != 30000 {
		t.Fatalf("got %v", result.TapeLen)
	}
}

func TestTapeConfig(t *testing.T) {
	result, err := Run(">>>>>.", nil, Config{
		TapeSize:   2,
		TapeGrowth: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.TapeLen != 8 {
		t.Fatalf("got %v", result.TapeLen)
	}

	result, err = Run("", nil, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if result.TapeLen != DefaultTapeSize {
		t.Fatalf("got %v", result.TapeLen)
	}
}

func TestPointerUnderflow(t *testing.T) {
	result, err := Run("<", nil, DefaultConfig())
	if result != nil {
		t.Fatalf("got %+v", result)
	}
	var e *PointerUnderflow
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Index != 0 {
		t.Fatalf("got %v", e.Index)
	}

	// output produced before the failure is discarded
	output, err := Interpret("+.>.<<", nil)
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Index != 5 {
		t.Fatalf("got %v", e.Index)
	}
	if output != "" {
		t.Fatalf("got %q", output)
	}
}

func TestUnderflowKeepsCursor(t *testing.T) {
	program, err := Load("><<")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMachine(program, nil, DefaultConfig())
	err = m.Run()
	var e *PointerUnderflow
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if m.DP != 0 {
		t.Fatalf("got %v", m.DP)
	}
	if m.IP != 2 {
		t.Fatalf("got %v", m.IP)
	}
	if m.Done() {
		t.Fatal("should not be done")
	}
}

func TestLoops(t *testing.T) {
	// skipped loop
	output, err := Interpret("[.]+.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x01" {
		t.Fatalf("got %q", output)
	}

	// 3 * 5 by nested counting
	output, err = Interpret("+++[>+++++<-]>.", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x0f" {
		t.Fatalf("got %q", output)
	}

	// copy input until end
	output, err = Interpret(",[.,]", strings.NewReader("loop"))
	if err != nil {
		t.Fatal(err)
	}
	if output != "loop" {
		t.Fatalf("got %q", output)
	}
}

func TestStep(t *testing.T) {
	program, err := Load("++[-]")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMachine(program, nil, DefaultConfig())
	var ips []int
	for !m.Done() {
		if err := m.Step(); err != nil {
			t.Fatal(err)
		}
		ips = append(ips, m.IP)
	}
	// a taken ] resumes after its [
	if !slices.Equal(ips, []int{1, 2, 3, 4, 3, 4, 5}) {
		t.Fatalf("got %v", ips)
	}
	if m.Steps != 7 {
		t.Fatalf("got %v", m.Steps)
	}
	if m.Cell() != 0 {
		t.Fatalf("got %v", m.Cell())
	}
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Steps != 7 {
		t.Fatal("step on a finished machine should do nothing")
	}
}

func TestEmptyProgram(t *testing.T) {
	output, err := Interpret("just a comment", nil)
	if err != nil {
		t.Fatal(err)
	}
	if output != "" {
		t.Fatalf("got %q", output)
	}
}
