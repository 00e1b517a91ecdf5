package model

// ================ Config ================
type ConversationConfig struct {
	HistorySize int `envconfig:"CONVERSATION_HISTORY_SIZE" default:"5"`
}

type ClassifierConfig struct {
	// Alpha is the additive smoothing parameter of the naive Bayes model.
	Alpha float64 `envconfig:"CLASSIFIER_ALPHA" default:"1.0"`
}
