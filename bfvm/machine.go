package bfvm

import (
	"errors"
	"io"
	"reflect"
)

// Machine holds the state of one program run. It must not be shared between goroutines.
type Machine struct {
	Code  []Op
	Jumps []int

	Tape   []byte
	DP     int
	IP     int
	Output []byte

	TapeGrowth int

	Steps          int
	Reads          int
	InputExhausted int

	input io.ByteReader
}

func NewMachine(program *Program, input io.Reader, config Config) *Machine {
	config = config.normalized()
	m := &Machine{
		Code:       program.Code,
		Jumps:      program.Jumps,
		Tape:       make([]byte, config.TapeSize),
		TapeGrowth: config.TapeGrowth,
	}
	m.SetInput(input)
	return m
}

// SetInput replaces the input source. A nil reader, typed nil pointers included, behaves as an exhausted one.
func (m *Machine) SetInput(input io.Reader) {
	if isNil(input) {
		m.input = nil
		return
	}
	switch r := input.(type) {
	case nil:
		m.input = nil
	case io.ByteReader:
		m.input = r
	default:
		m.input = &unbufferedReader{
			r: r,
		}
	}
}

func isNil(input io.Reader) bool {
	if input == nil {
		return true
	}
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// unbufferedReader reads one byte per call, so no input past the last read is consumed.
type unbufferedReader struct {
	r   io.Reader
	buf [1]byte
}

func (u *unbufferedReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(u.r, u.buf[:]); err != nil {
		return 0, err
	}
	return u.buf[0], nil
}

// Done reports whether the instruction cursor is past the last instruction.
func (m *Machine) Done() bool {
	return m.IP >= len(m.Code)
}

func (m *Machine) Run() error {
	for m.IP < len(m.Code) {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes the instruction at IP. On error IP is left at the failing instruction.
func (m *Machine) Step() error {
	if m.IP >= len(m.Code) {
		return nil
	}
	switch m.Code[m.IP] {

	case OpRight:
		m.DP++
		if m.DP >= len(m.Tape) {
			m.Tape = append(m.Tape, make([]byte, m.TapeGrowth)...)
		}

	case OpLeft:
		if m.DP == 0 {
			return &PointerUnderflow{
				Index: m.IP,
			}
		}
		m.DP--

	case OpInc:
		m.Tape[m.DP]++

	case OpDec:
		m.Tape[m.DP]--

	case OpOutput:
		m.Output = append(m.Output, m.Tape[m.DP])

	case OpInput:
		m.Reads++
		b, err := m.readByte()
		if errors.Is(err, io.EOF) {
			m.InputExhausted++
			b = 0
		} else if err != nil {
			return &InputError{
				Index: m.IP,
				Err:   err,
			}
		}
		m.Tape[m.DP] = b

	case OpLoopStart:
		if m.Tape[m.DP] == 0 {
			m.IP = m.Jumps[m.IP]
		}

	case OpLoopEnd:
		if m.Tape[m.DP] != 0 {
			m.IP = m.Jumps[m.IP]
		}

	}

	m.IP++
	m.Steps++
	return nil
}

func (m *Machine) readByte() (byte, error) {
	if m.input == nil {
		return 0, io.EOF
	}
	return m.input.ReadByte()
}

// Cell returns the value under the data cursor.
func (m *Machine) Cell() byte {
	return m.Tape[m.DP]
}
