package app

import (
	"errors"
	"testing"
)

func TestNewOperation(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		parameters string
	}{
		{
			name:       "with parameters",
			operation:  "Exec",
			parameters: "list",
		},
		{
			name:       "empty parameters",
			operation:  "Backup",
			parameters: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation("20240115T103000Z", tt.operation, tt.parameters)

			if op.ID != "20240115T103000Z" {
				t.Errorf("ID = %q, want %q", op.ID, "20240115T103000Z")
			}
			if op.Operation != tt.operation {
				t.Errorf("Operation = %q, want %q", op.Operation, tt.operation)
			}
			if op.Parameters != tt.parameters {
				t.Errorf("Parameters = %q, want %q", op.Parameters, tt.parameters)
			}
			if op.Status != "success" {
				t.Errorf("Status = %q, want %q", op.Status, "success")
			}
			if op.Commands != 0 {
				t.Errorf("Commands = %d, want 0", op.Commands)
			}
		})
	}
}

func TestOperation_Record(t *testing.T) {
	errFailed := errors.New("failed")

	tests := []struct {
		name       string
		results    []error
		wantFailed bool
	}{
		{name: "nothing recorded", results: nil, wantFailed: false},
		{name: "all succeed", results: []error{nil, nil}, wantFailed: false},
		{name: "one failure", results: []error{nil, errFailed, nil}, wantFailed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation("op", "Shell", "")
			for _, err := range tt.results {
				op.Record(err)
			}
			if op.Commands != len(tt.results) {
				t.Errorf("Commands = %d, want %d", op.Commands, len(tt.results))
			}
			if got := op.Failed(); got != tt.wantFailed {
				t.Errorf("Failed() = %v, want %v", got, tt.wantFailed)
			}
		})
	}
}
