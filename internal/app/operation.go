package app

// Operation tracks one CLI invocation. Its ID tags every log line written
// while the invocation runs; its Status is logged when the app closes.
type Operation struct {
	ID         string
	Operation  string
	Parameters string
	Status     string // "success" or "error"
	Commands   int
}

// NewOperation creates a new operation that has not run any commands yet.
func NewOperation(id, operation, parameters string) *Operation {
	return &Operation{
		ID:         id,
		Operation:  operation,
		Parameters: parameters,
		Status:     "success",
	}
}

// Record counts one command run under the operation. Any failure marks the
// whole operation as failed.
func (op *Operation) Record(err error) {
	op.Commands++
	if err != nil {
		op.Status = "error"
	}
}

// Failed returns true if any recorded command failed.
func (op *Operation) Failed() bool {
	return op.Status == "error"
}
