package loam

// PresetMetadata represents the frontmatter of a preset document.
//
//	---
//	title: Big Red
//	props:
//	  stars_length: 10
//	  color: "#FF0000"
//	---
//	Markdown description.
type PresetMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`

	// Props is the widget configuration. Keys follow pkg/config (snake_case
	// config names or component prop names).
	Props map[string]any `json:"props" mapstructure:"props"`
}
