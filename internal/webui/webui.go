package webui

import (
	"tubemap.nanjingmetro.org/internal/tube"
)

// WebUI serves the HTML debug pages for inspecting the loaded network.
type WebUI struct {
	Metro *tube.Manager
}

func NewWebUI(metro *tube.Manager) *WebUI {
	return &WebUI{Metro: metro}
}
