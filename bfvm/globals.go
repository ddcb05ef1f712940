package bfvm

// Globals exposes the machine state for inspection in a debug session.
func (m *Machine) Globals() map[string]any {
	var cell int
	if m.DP >= 0 && m.DP < len(m.Tape) {
		cell = int(m.Tape[m.DP])
	}
	var op string
	if m.IP >= 0 && m.IP < len(m.Code) {
		op = m.Code[m.IP].String()
	}
	code := make([]byte, len(m.Code))
	for i, o := range m.Code {
		code[i] = byte(o)
	}
	return map[string]any{
		"ip":       m.IP,
		"dp":       m.DP,
		"op":       op,
		"cell":     cell,
		"tape_len": len(m.Tape),
		"steps":    m.Steps,
		"output":   outputText(m.Output),
		"code":     string(code),
		"cell_at": func(i int) int {
			if i < 0 || i >= len(m.Tape) {
				return 0
			}
			return int(m.Tape[i])
		},
	}
}
