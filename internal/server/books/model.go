package books

// Book is a catalog record. There is no ownership link to a user: the
// catalog is shared.
type Book struct {
	ID     int64
	Title  string
	Author string
}
