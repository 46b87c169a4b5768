package driving

// TextService transforms text.
type TextService interface {
	// Upper returns s with every character mapped to its uppercase form.
	Upper(s string) string
}
