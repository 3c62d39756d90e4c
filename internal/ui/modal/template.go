package modal

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templatesOnce sync.Once
	templates     *template.Template
	templatesErr  error
)

// PageData is handed to a dialog page template.
type PageData struct {
	Title    string
	Channels map[string]string
	Data     any
}

func loadTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		templates, templatesErr = template.ParseFS(templateFS, "templates/*.html")
	})
	return templates, templatesErr
}

// RenderPage renders the named dialog page (file name without extension)
// with the flow's channel map injected so the page can address the flow.
func RenderPage(name string, channels ChannelSet, title string, data any) (string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return "", fmt.Errorf("parse dialog templates: %w", err)
	}
	var buf bytes.Buffer
	page := PageData{Title: title, Channels: channels.Map(), Data: data}
	if err := tmpl.ExecuteTemplate(&buf, name+".html", page); err != nil {
		return "", fmt.Errorf("render dialog %s: %w", name, err)
	}
	return buf.String(), nil
}
