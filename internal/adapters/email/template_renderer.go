package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
	texttemplate "text/template"

	"communitysite/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const layoutFile = "templates/_layout.html"

// templateRenderer implements domain.EmailTemplateRenderer using embedded template files.
// HTML bodies are wrapped in the shared layout; parsed templates are cached per file.
type templateRenderer struct {
	mu   sync.Mutex
	html map[string]*template.Template
	text map[string]*texttemplate.Template
}

// NewTemplateRenderer returns an EmailTemplateRenderer that loads templates from the embedded templates folder.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: make(map[string]*template.Template),
		text: make(map[string]*texttemplate.Template),
	}
}

// Render executes the named template (e.g. "event_invitation") with data and returns subject, html, and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	subject, err = r.renderText(templateName+"_subject.txt", data)
	if err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	htmlBody, err = r.renderHTML(templateName+".html", data)
	if err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	textBody, err = r.renderText(templateName+".txt", data)
	if err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func (r *templateRenderer) renderHTML(name string, data any) (string, error) {
	r.mu.Lock()
	t, ok := r.html[name]
	if !ok {
		var err error
		t, err = template.New("layout").Option("missingkey=error").ParseFS(templateFS, layoutFile, "templates/"+name)
		if err != nil {
			r.mu.Unlock()
			return "", err
		}
		r.html[name] = t
	}
	r.mu.Unlock()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *templateRenderer) renderText(name string, data any) (string, error) {
	r.mu.Lock()
	t, ok := r.text[name]
	if !ok {
		raw, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			r.mu.Unlock()
			return "", err
		}
		t, err = texttemplate.New(name).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			r.mu.Unlock()
			return "", err
		}
		r.text[name] = t
	}
	r.mu.Unlock()

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
