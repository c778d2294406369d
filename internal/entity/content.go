package entity

// ContentBlock is an admin-editable piece of static page text keyed by slug,
// e.g. "home.hero", "about.story", "contact.hours".
type ContentBlock struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	BodyDE string `json:"body_de"`
}

// GalleryImage is one entry on the gallery page. The image itself lives in
// external storage; only the URL is kept here.
type GalleryImage struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Setting is one key/value row, e.g. maintenance_mode = "on".
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
