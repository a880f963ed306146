package builder

// validateMin ensures that got ≥ min, else ErrTooSmall.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(ErrTooSmall, method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(ErrInvalidProbability, method,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
