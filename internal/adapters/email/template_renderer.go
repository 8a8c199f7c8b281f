package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"sportsessions/internal/domain"
)

// Notification emails live under templates/ as three files sharing a base name:
// <name>_subject.txt, <name>.txt and <name>.html. Only the html body is escaped.
//
//go:embed templates/*
var templateFS embed.FS

var (
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
	htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
)

type executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

type templateRenderer struct {
	text executor
	html executor
}

// NewTemplateRenderer returns an EmailTemplateRenderer over the embedded notification
// templates, parsed once at startup.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{text: textTemplates, html: htmlTemplates}
}

// Render fills the subject, html and text parts of the named message, e.g. "session_joined"
// with a *domain.SessionJoinedEmailData.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	if subject, err = execute(r.text, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if htmlBody, err = execute(r.html, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = execute(r.text, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	// subjects are single line
	subject = strings.Join(strings.Fields(subject), " ")
	return subject, htmlBody, textBody, nil
}

func execute(t executor, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
