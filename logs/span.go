package logs

// Span tags the records of one scan run.
type Span string

type spanKey struct{}

var SpanKey spanKey
