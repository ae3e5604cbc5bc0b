package notes

// Store holds the notes the local player has written on cards.
// Implementations must be thread-safe.
type Store interface {
	// SetNote replaces the note on a card and remembers it as the last note entered.
	// An empty text clears the note.
	SetNote(order int, text string)
	// Note returns the note on a card.
	Note(order int) (string, bool)
	// LastNoteText returns the text most recently entered on any card.
	LastNoteText() string
	// OpenEditor marks a card's note as being edited.
	OpenEditor(order int)
	// CloseEditor ends the current edit, if any.
	CloseEditor()
	// Editing returns the card whose note is being edited.
	Editing() (int, bool)
	// All returns a copy of every note.
	All() map[int]string
}
