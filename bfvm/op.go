package bfvm

// Op is one instruction of a filtered program. Its value is the source symbol.
type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpInc       Op = '+'
	OpDec       Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopStart Op = '['
	OpLoopEnd   Op = ']'
)

func (o Op) Valid() bool {
	switch o {
	case OpRight, OpLeft, OpInc, OpDec, OpOutput, OpInput, OpLoopStart, OpLoopEnd:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}
