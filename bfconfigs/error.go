package bfconfigs

// Error reports an unusable configuration value. Providers panic with it.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
