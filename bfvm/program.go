package bfvm

// Program is a filtered instruction sequence with its resolved jump table.
type Program struct {
	Code  []Op
	Jumps []int
}

func Load(source string) (*Program, error) {
	code := Filter(source)
	jumps, err := ResolveJumps(code)
	if err != nil {
		return nil, err
	}
	return &Program{
		Code:  code,
		Jumps: jumps,
	}, nil
}

// ResolveJumps pairs every loop start with its loop end.
// jumps[s] == e and jumps[e] == s for each pair; other entries are unused.
func ResolveJumps(code []Op) ([]int, error) {
	jumps := make([]int, len(code))
	var stack []int
	for i, op := range code {
		switch op {
		case OpLoopStart:
			stack = append(stack, i)
		case OpLoopEnd:
			if len(stack) == 0 {
				return nil, &UnmatchedCloseBracket{
					Index: i,
				}
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[start] = i
			jumps[i] = start
		}
	}
	if len(stack) > 0 {
		return nil, &UnmatchedOpenBracket{
			Index: stack[len(stack)-1],
		}
	}
	return jumps, nil
}
