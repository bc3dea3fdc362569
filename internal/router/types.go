package router

// Intent represents user's intention
type Intent string

const (
	IntentConversational  Intent = "CONVERSATIONAL"
	IntentImageGeneration Intent = "IMAGE_GENERATION"
	IntentSearchAugmented Intent = "SEARCH_AUGMENTED"
)

// Category buckets a search intent by the kind of information it needs
type Category string

const (
	CategoryTemporal  Category = "temporal"
	CategoryFinancial Category = "financial"
	CategoryWeather   Category = "weather"
	CategoryNews      Category = "news"
	CategoryTech      Category = "tech"
	CategorySports    Category = "sports"
	CategoryLocation  Category = "location"
	CategoryGeneric   Category = "generic"
)

// Decision is the classifier verdict for one utterance. Produced once per
// request and never mutated afterwards.
type Decision struct {
	Intent Intent `json:"intent"`

	// Prompt is the extracted image description, set only for IMAGE_GENERATION
	Prompt string `json:"prompt,omitempty"`

	// Query and Category are set only for SEARCH_AUGMENTED
	Query    string   `json:"query,omitempty"`
	Category Category `json:"category,omitempty"`

	// EmptyInput flags an empty or whitespace-only utterance
	EmptyInput bool `json:"empty_input,omitempty"`
}
