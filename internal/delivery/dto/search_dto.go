package dto

// SearchRequest is read from the query string
type SearchRequest struct {
	Query      string
	Role       string
	Department string
	Gender     string
	SortBy     string
	Order      string
}
