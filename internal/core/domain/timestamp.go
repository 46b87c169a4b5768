package domain

// FixedTimestamp is the value reported by the clock service.
// It is a literal, not read from any clock or timezone database.
const FixedTimestamp = "2024-01-01 00:00:00"
