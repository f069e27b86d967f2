package entity

// Word is an immutable vocabulary entry. Classification is either a topic
// name or a difficulty level depending on the dataset generation, never both.
type Word struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Definition      string   `json:"definition"`
	Topic           string   `json:"topic,omitempty"`
	Level           int      `json:"level,omitempty"`
	ExampleSentence string   `json:"exampleSentence,omitempty"`
	Synonyms        []string `json:"synonyms,omitempty"`
	Antonyms        []string `json:"antonyms,omitempty"`
	Roots           []string `json:"roots,omitempty"`
	ConfusedWith    []string `json:"confusedWith,omitempty"`
	Pronunciation   string   `json:"pronunciation,omitempty"`
	PartOfSpeech    string   `json:"partOfSpeech,omitempty"`
}

// Topic groups words for browsing and quiz selection.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
