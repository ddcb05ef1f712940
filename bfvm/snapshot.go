package bfvm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var snapshotEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("bfvm: create CBOR enc mode: %w", err))
	}
	return em
}()

type snapshot struct {
	Code           []byte `cbor:"1,keyasint"`
	Jumps          []int  `cbor:"2,keyasint"`
	Tape           []byte `cbor:"3,keyasint"`
	DP             int    `cbor:"4,keyasint"`
	IP             int    `cbor:"5,keyasint"`
	Output         []byte `cbor:"6,keyasint"`
	TapeGrowth     int    `cbor:"7,keyasint"`
	Steps          int    `cbor:"8,keyasint"`
	Reads          int    `cbor:"9,keyasint"`
	InputExhausted int    `cbor:"10,keyasint"`
}

// Snapshot encodes the machine state. The input source is not part of it.
func (m *Machine) Snapshot(w io.Writer) error {
	code := make([]byte, len(m.Code))
	for i, op := range m.Code {
		code[i] = byte(op)
	}
	data, err := snapshotEncMode.Marshal(snapshot{
		Code:           code,
		Jumps:          m.Jumps,
		Tape:           m.Tape,
		DP:             m.DP,
		IP:             m.IP,
		Output:         m.Output,
		TapeGrowth:     m.TapeGrowth,
		Steps:          m.Steps,
		Reads:          m.Reads,
		InputExhausted: m.InputExhausted,
	})
	if err != nil {
		return fmt.Errorf("bfvm: marshal snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Restore replaces the state of m with a snapshot. The input source of m is kept.
func (m *Machine) Restore(r io.Reader) error {
	var s snapshot
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("bfvm: unmarshal snapshot: %w", err)
	}
	if len(s.Jumps) != len(s.Code) {
		return fmt.Errorf("bfvm: bad snapshot: %d instructions, %d jumps", len(s.Code), len(s.Jumps))
	}
	if s.DP < 0 || s.DP >= len(s.Tape) {
		return fmt.Errorf("bfvm: bad snapshot: cursor %d, tape length %d", s.DP, len(s.Tape))
	}
	if s.IP < 0 || s.IP > len(s.Code) {
		return fmt.Errorf("bfvm: bad snapshot: instruction cursor %d, %d instructions", s.IP, len(s.Code))
	}
	code := make([]Op, len(s.Code))
	for i, b := range s.Code {
		code[i] = Op(b)
		if !code[i].Valid() {
			return fmt.Errorf("bfvm: bad snapshot: invalid instruction %q at %d", b, i)
		}
	}
	if err := checkJumps(code, s.Jumps); err != nil {
		return err
	}
	m.Code = code
	m.Jumps = s.Jumps
	m.Tape = s.Tape
	m.DP = s.DP
	m.IP = s.IP
	m.Output = s.Output
	m.TapeGrowth = s.TapeGrowth
	if m.TapeGrowth <= 0 {
		m.TapeGrowth = DefaultTapeGrowth
	}
	m.Steps = s.Steps
	m.Reads = s.Reads
	m.InputExhausted = s.InputExhausted
	return nil
}

func checkJumps(code []Op, jumps []int) error {
	for i, op := range code {
		var want Op
		switch op {
		case OpLoopStart:
			want = OpLoopEnd
		case OpLoopEnd:
			want = OpLoopStart
		default:
			continue
		}
		j := jumps[i]
		if j < 0 || j >= len(code) || code[j] != want || jumps[j] != i {
			return fmt.Errorf("bfvm: bad snapshot: bracket at %d jumps to %d", i, j)
		}
	}
	return nil
}
