package config

// ReporterConfig defines configuration for console diff output
type ReporterConfig struct {
	// ShowPreview renders the revealed diff lines after generation.
	ShowPreview bool `json:"show_preview,omitempty" yaml:"show_preview,omitempty"`
	// HighlightReplacements adds character-level markers to adjacent
	// delete/insert pairs in the preview.
	HighlightReplacements bool `json:"highlight_replacements,omitempty" yaml:"highlight_replacements,omitempty"`
	// MaxPreviewLines caps the number of rendered lines; 0 means no cap.
	MaxPreviewLines int `json:"max_preview_lines,omitempty" yaml:"max_preview_lines,omitempty" validate:"gte=0"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		ShowPreview:           true,
		HighlightReplacements: true,
		MaxPreviewLines:       DefaultMaxPreviewLines,
	}
}
