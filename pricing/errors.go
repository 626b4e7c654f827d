package pricing

import "fmt"

// ValidationError: a required customization group has no selection at
// submission time. Recoverable; the UI highlights the group and blocks
// submission.
type ValidationError struct {
	MissingGroup string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("required selection missing for %q", e.MissingGroup)
}

// StockError: requested quantity exceeds tracked stock.
type StockError struct {
	Requested int
	Available int
}

func (e StockError) Error() string {
	return fmt.Sprintf("requested %d but only %d in stock", e.Requested, e.Available)
}

// IncompleteSelectionError: a builder step's selected count is outside its
// [min, max] bounds.
type IncompleteSelectionError struct {
	StepKey string
}

func (e IncompleteSelectionError) Error() string {
	return fmt.Sprintf("step %q is incomplete", e.StepKey)
}

// InvalidQuantityError: non-positive quantity reached the materializer.
// The quantity stepper keeps this unreachable in normal flows; this is a
// programming-level guard.
type InvalidQuantityError struct {
	Qty int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d", e.Qty)
}
