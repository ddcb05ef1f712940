package logs

// Span identifies one unit of work, such as a single program run, in log records and errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
