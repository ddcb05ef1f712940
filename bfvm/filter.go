package bfvm

// Filter drops every byte that is not an instruction symbol. It never fails.
func Filter(source string) []Op {
	code := make([]Op, 0, len(source))
	for i := 0; i < len(source); i++ {
		if op := Op(source[i]); op.Valid() {
			code = append(code, op)
		}
	}
	return code
}
