package books

type CreateBookPayload struct {
	// One of olid/isbn triggers a catalog lookup; otherwise title is
	// required and the record is created from the payload alone.
	OLID            *string  `json:"olid,omitempty" validate:"omitempty,min=1,max=40"`
	ISBN            *string  `json:"isbn,omitempty" validate:"omitempty,min=10,max=17"`
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Authors         []string `json:"authors,omitempty" validate:"omitempty,max=20,dive,min=1,max=300"`
	PageCount       *int     `json:"pageCount,omitempty" validate:"omitempty,min=0"`
	PublishedDate   *string  `json:"publishedDate,omitempty" validate:"omitempty,max=40"`
	Publisher       *string  `json:"publisher,omitempty" validate:"omitempty,max=300"`
	BookDescription *string  `json:"bookDescription,omitempty" validate:"omitempty,max=10000"`
	Shelf           string   `json:"shelf,omitempty" default:"watchlist" validate:"oneof=watchlist currentlyReading read"`
	ReadingMedium   *string  `json:"readingMedium,omitempty" validate:"omitempty,max=100"`
	StartedOn       *string  `json:"startedOn,omitempty" validate:"omitempty,date"`
	FinishedOn      *string  `json:"finishedOn,omitempty" validate:"omitempty,date"`
}

type UpdateBookPayload struct {
	Title           *string   `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Authors         *[]string `json:"authors,omitempty" validate:"omitempty,max=20,dive,min=1,max=300"`
	ImageLinks      *string   `json:"imageLinks,omitempty"` // raw JSON text, validated in the handler
	Subjects        *[]string `json:"subjects,omitempty" validate:"omitempty,max=50"`
	Tags            *[]string `json:"tags,omitempty" validate:"omitempty,max=50"`
	PageCount       *int      `json:"pageCount,omitempty" validate:"omitempty,min=0"`
	PublishedDate   *string   `json:"publishedDate,omitempty" validate:"omitempty,max=40"`
	FullPublishDate *string   `json:"fullPublishDate,omitempty" validate:"omitempty,max=40"`
	Publisher       *string   `json:"publisher,omitempty" validate:"omitempty,max=300"`
	BookDescription *string   `json:"bookDescription,omitempty" validate:"omitempty,max=10000"`
	StartedOn       *string   `json:"startedOn,omitempty" validate:"omitempty,date"`
	FinishedOn      *string   `json:"finishedOn,omitempty" validate:"omitempty,date"`
	ReadingMedium   *string   `json:"readingMedium,omitempty" validate:"omitempty,max=100"`
	Shelf           *string   `json:"shelf,omitempty" validate:"omitempty,oneof=watchlist currentlyReading read"`
	ReadingProgress *int      `json:"readingProgress,omitempty" validate:"omitempty,min=0,max=100"`
}

type ReplaceHighlightsPayload struct {
	Highlights *[]string `json:"highlights,omitempty" validate:"omitempty,max=1000"`
	Text       *string   `json:"text,omitempty" validate:"omitempty,max=100000"`
}
