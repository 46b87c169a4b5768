package driving

// StatsService computes statistics over numeric sequences.
type StatsService interface {
	// Mean returns the arithmetic mean of numbers.
	// The boolean is false when numbers is empty and no mean exists.
	Mean(numbers []float64) (float64, bool)
}
