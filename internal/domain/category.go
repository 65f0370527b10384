package domain

// Category is a flat content tag attached to legends.
type Category struct {
	ID   int64
	Name string
}
