package domain

// Preset is a named configuration with a human readable description (markdown).
type Preset struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Config      Config `json:"config"`
}
