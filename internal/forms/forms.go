package forms

import "context"

// ElementType names the widget a host renders for an element.
type ElementType string

const (
	TypeSelect      ElementType = "select"
	TypeMachineName ElementType = "machine_name"
	TypeTextField   ElementType = "textfield"
	TypeFieldset    ElementType = "fieldset"
	TypeMarkup      ElementType = "markup"
)

// Option is a select choice.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Condition matches when the sibling element Field holds Value.
type Condition struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// States holds conditional behaviour keyed on sibling values. An element is
// visible when every Visible condition matches.
type States struct {
	Visible []Condition `json:"visible,omitempty"`
}

// ExistsFunc reports whether a machine name is already taken.
type ExistsFunc func(ctx context.Context, value string) bool

// Element is a declarative form element.
type Element struct {
	Name         string      `json:"name"`
	Type         ElementType `json:"type"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	DefaultValue string      `json:"default_value,omitempty"`
	EmptyOption  *Option     `json:"empty_option,omitempty"`
	Options      []Option    `json:"options,omitempty"`
	MaxLength    int         `json:"max_length,omitempty"`
	Pattern      string      `json:"pattern,omitempty"`
	Required     bool        `json:"required,omitempty"`
	Collapsed    bool        `json:"collapsed,omitempty"`
	Markup       string      `json:"markup,omitempty"`
	States       *States     `json:"states,omitempty"`
	Children     []Element   `json:"children,omitempty"`
	Exists       ExistsFunc  `json:"-"`
}

// Form is an ordered list of elements.
type Form struct {
	Elements []Element `json:"elements"`
}

// Element finds an element by name, searching children.
func (f Form) Element(name string) (Element, bool) {
	return find(f.Elements, name)
}

// Names lists top-level element names in order.
func (f Form) Names() []string {
	names := make([]string, 0, len(f.Elements))
	for _, el := range f.Elements {
		names = append(names, el.Name)
	}
	return names
}

func find(elements []Element, name string) (Element, bool) {
	for _, el := range elements {
		if el.Name == name {
			return el, true
		}
		if child, ok := find(el.Children, name); ok {
			return child, true
		}
	}
	return Element{}, false
}

// VisibleWith reports whether the element is visible for the submitted values.
func (e Element) VisibleWith(values map[string]string) bool {
	if e.States == nil {
		return true
	}
	for _, cond := range e.States.Visible {
		if values[cond.Field] != cond.Value {
			return false
		}
	}
	return true
}

// HasOption reports whether value is a selectable choice. The empty option
// counts when present.
func (e Element) HasOption(value string) bool {
	if e.EmptyOption != nil && e.EmptyOption.Value == value {
		return true
	}
	for _, opt := range e.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// VisibleWhen builds a single-condition visibility state.
func VisibleWhen(field, value string) *States {
	return &States{Visible: []Condition{{Field: field, Value: value}}}
}
