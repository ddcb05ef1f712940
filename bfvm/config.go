package bfvm

const (
	DefaultTapeSize   = 30000
	DefaultTapeGrowth = 1000
)

type Config struct {
	// TapeSize is the number of zero cells the tape starts with.
	TapeSize int
	// TapeGrowth is the number of zero cells appended when the cursor moves past the end.
	TapeGrowth int
}

func DefaultConfig() Config {
	return Config{
		TapeSize:   DefaultTapeSize,
		TapeGrowth: DefaultTapeGrowth,
	}
}

func (c Config) normalized() Config {
	if c.TapeSize <= 0 {
		c.TapeSize = DefaultTapeSize
	}
	if c.TapeGrowth <= 0 {
		c.TapeGrowth = DefaultTapeGrowth
	}
	return c
}
