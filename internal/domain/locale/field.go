package locale

// FieldType distinguishes free-text inputs from enumerated selects.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldSelect FieldType = "select"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// FieldSpec describes one form field: its key, built-in label and
// placeholder, requiredness, input type, select options, validation rule,
// and maximum input length (0 means unlimited).
//
// Labels and placeholders may be overridden by the translation catalog keyed
// by "<country>.<key>"; the override never changes Key, Required, Type, Rule,
// or MaxLength.
type FieldSpec struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
	Type        FieldType
	Options     []Option
	Rule        Rule
	MaxLength   int
}
