package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	doc := webUI.Metro.Document()

	switch dataType {
	case "stations":
		data = doc.Stations
		title = "Metro Map - Stations"
	case "lines":
		data = doc.Lines
		title = "Metro Map - Lines"
	case "document":
		data = doc
		title = "Metro Map - Document"
	case "stats":
		stats, err := webUI.Metro.Stats(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = stats
		title = "Metro Map - Stats"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stations, lines, document, stats.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
