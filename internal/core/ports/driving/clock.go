package driving

// ClockService reports the current time as a formatted string.
type ClockService interface {
	Now() string
}
