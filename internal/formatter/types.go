package formatter

// ThemeHook selects the template that renders a lightbox image.
const ThemeHook = "colorbox_image_formatter"

// Entity is the content item owning the image field.
type Entity interface {
	EntityType() string
	EntityID() string
	Label() string
}

// FieldDefinition describes the image field being rendered.
type FieldDefinition struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Label  string `json:"label,omitempty"`
	Bundle string `json:"bundle,omitempty"`
}

// ImageItem is one value of a multi-value image field.
type ImageItem struct {
	URI    string `json:"uri"`
	Alt    string `json:"alt,omitempty"`
	Title  string `json:"title,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// RenderDescriptor carries everything the template layer needs for one item.
// Node aliases Entity for templates written against the node-only API.
type RenderDescriptor struct {
	Theme           string
	Delta           int
	Item            ImageItem
	EntityType      string
	Entity          Entity
	Node            Entity
	Field           FieldDefinition
	DisplaySettings DisplaySettings
	Langcode        string
}

// BasicEntity is a plain Entity value.
type BasicEntity struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (e BasicEntity) EntityType() string { return e.Type }
func (e BasicEntity) EntityID() string   { return e.ID }
func (e BasicEntity) Label() string      { return e.Title }
