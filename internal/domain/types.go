package domain

// Document is a single file captured by an indexing run. The text is the
// extracted plain-text content, which may legitimately be empty (for example
// a scanned PDF with no embedded text).
type Document struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Text string `json:"text"`
}

// Index is the persisted TF-IDF artifact. Vectors[i] belongs to Docs[i] and
// every row has exactly len(Terms) entries, aligned to Terms order. An index
// is replaced wholesale on re-index; there is no incremental update.
type Index struct {
	Docs    []Document  `json:"docs"`
	Terms   []string    `json:"terms"`
	Vectors [][]float64 `json:"vectors"`
}

// EntityKind classifies a recognized entity.
type EntityKind string

const (
	EntityPerson       EntityKind = "PERSON"
	EntityLocation     EntityKind = "LOCATION"
	EntityOrganization EntityKind = "ORGANIZATION"
	EntityDate         EntityKind = "DATE"
	EntityEmail        EntityKind = "EMAIL"
	EntityMoney        EntityKind = "MONEY"
)

// Entity is a single recognized span within a text.
type Entity struct {
	Text       string     `json:"text"`
	Kind       EntityKind `json:"kind"`
	Confidence float64    `json:"confidence"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
}

// Sentiment is the overall polarity of a text. Score is in [0,1] where 0.5
// means neutral.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)
