package domain

// ChapeuKind says whether a chapeu came from a tag or a category.
type ChapeuKind string

// Chapeu kinds.
const (
	ChapeuTag      ChapeuKind = "tag"
	ChapeuCategory ChapeuKind = "category"
)

// Chapeu is the single headline label representing a content item.
// Tags take strict precedence over categories; exactly one of Tag or
// Category is set, matching Kind.
type Chapeu struct {
	Kind     ChapeuKind `json:"kind"`
	Tag      *Tag       `json:"tag,omitempty"`
	Category *Category  `json:"category,omitempty"`
}

// Name returns the display name of the underlying label.
func (c *Chapeu) Name() string {
	switch c.Kind {
	case ChapeuTag:
		return c.Tag.Name
	case ChapeuCategory:
		return c.Category.Name
	}
	return ""
}
