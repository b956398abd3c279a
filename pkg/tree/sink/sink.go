package sink

// Sink is a display surface for rendered tree text.
type Sink interface {
	// Display replaces the surface's entire content with text.
	// Implementations must write the whole block in one call; partial
	// updates are not part of the contract.
	Display(text string) error
}

// Display shows text on s. A nil sink is a no-op, so callers can treat
// the display surface as an optional collaborator.
func Display(s Sink, text string) error {
	if s == nil {
		return nil
	}
	return s.Display(text)
}
