package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("bad request"), http.StatusBadRequest},
		{"insufficient stock", &InsufficientStockError{ProductID: 1, Requested: 5, Available: 2}, http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "Product", ID: 1}, http.StatusNotFound},
		{"concurrency", &ConcurrencyError{ProductID: 1, Attempts: 3}, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("lookup: %w", &NotFoundError{Resource: "Order", ID: 2}), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Fatalf("Status(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestWorkflowStatusRemapsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "Product", ID: 99}
	if got := WorkflowStatus(err); got != http.StatusBadRequest {
		t.Fatalf("WorkflowStatus = %d, want 400", got)
	}

	other := &ConcurrencyError{ProductID: 1, Attempts: 3}
	if got := WorkflowStatus(other); got != http.StatusServiceUnavailable {
		t.Fatalf("WorkflowStatus = %d, want 503", got)
	}
}

func TestErrorMessages(t *testing.T) {
	nf := &NotFoundError{Resource: "Product", ID: 7}
	if nf.Error() != "Product with ID 7 not found" {
		t.Fatalf("unexpected message: %q", nf.Error())
	}

	is := &InsufficientStockError{ProductID: 7, Requested: 5, Available: 2}
	if is.Error() != "insufficient stock for product ID 7: requested 5, available 2" {
		t.Fatalf("unexpected message: %q", is.Error())
	}
}
