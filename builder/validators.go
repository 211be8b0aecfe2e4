// Package builder provides validation helpers to enforce
// parameter contracts in GraphConstructor factories.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Used by RandomSparse. Returns
// "<Method>: probability must be in [0.0,1.0], got <p>" if out of range.
//
// Parameters:
//   - method: canonical constructor name.
//   - p:      probability value to validate.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
