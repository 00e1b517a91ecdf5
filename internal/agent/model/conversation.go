package model

// HistoryEntry is one exchange: what the user said and what the bot answered.
type HistoryEntry struct {
	UserInput   string
	BotResponse string
}

// HistoryReader is the read-only view of a conversation's recent turns.
// Strategies receive it so they can consult history but never mutate it.
type HistoryReader interface {
	// Latest returns the most recent entry, false when history is empty
	Latest() (HistoryEntry, bool)

	// Len returns the number of entries currently held
	Len() int

	// Entries returns a chronological copy of the held entries
	Entries() []HistoryEntry
}

// ResponseStrategy produces a reply for a message given the recent history.
type ResponseStrategy interface {
	Generate(message string, history HistoryReader) (string, error)

	// Name identifies the strategy in logs
	Name() string
}
