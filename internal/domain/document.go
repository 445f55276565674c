package domain

// DefaultTitle is used when an uploaded document carries no title.
const DefaultTitle = "Untitled"

// Document is a single knowledge-base entry owned by one tenant.
// The URL is the identity key within that tenant's corpus; it may be empty,
// in which case all untitled-URL documents share the same identity.
type Document struct {
	Title   string
	URL     string
	Content string
}

// Normalize fills defaulted fields the way the upload contract promises:
// a missing title becomes DefaultTitle, the URL stays as given (possibly empty).
func (d Document) Normalize() Document {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	return d
}
