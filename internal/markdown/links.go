package markdown

// Link is a rendered link of a page. Reference-style usages carry the
// destination of their definition.
type Link struct {
	Destination string
}

// PageRef is a link to another generated page, e.g. Weapon.md#damage.
type PageRef struct {
	Page   string // file name, e.g. Weapon.md
	Anchor string // without '#', empty when absent
}
