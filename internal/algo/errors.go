package algo

import "errors"

var (
	// ErrNoRouteFound indicates the candidate queue drained before the end
	// region was reached. Fatal to the solve in the base policy.
	ErrNoRouteFound = errors.New("algo: no route found")
	// ErrBudgetExhausted indicates the step count exceeded the composed
	// iteration budget.
	ErrBudgetExhausted = errors.New("algo: iteration budget exhausted")
)
