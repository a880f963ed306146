package builder

// Constructor names used to prefix errors.
const (
	MethodNominal       = "Nominal"
	MethodOrdinal       = "Ordinal"
	MethodContranominal = "Contranominal"
	MethodRandom        = "Random"
	MethodRows          = "Rows"
)

// MinScale is the smallest size accepted by the scale constructors.
const MinScale = 1

// MinProbability is the lower bound for the cell probability of Random, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the cell probability of Random, inclusive.
const MaxProbability = 1.0

// RowMark marks an incident cell in Rows; any other byte is an empty cell.
const RowMark = 'X'
