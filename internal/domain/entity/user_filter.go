package entity

// UserFilter narrows user searches. Empty fields are ignored.
type UserFilter struct {
	Query      string
	Role       Role
	Department string
	Gender     string
	SortBy     string
	Order      string
}
