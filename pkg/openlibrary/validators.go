package openlibrary

type SearchQuery struct {
	Q string `query:"q" json:"q" validate:"required,min=1,max=200"`
}
