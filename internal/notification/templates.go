package notification

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*
var templateFS embed.FS

// MailContext is the data available to subject, body and sender templates.
type MailContext struct {
	ArticleTitle   string
	ArticleURL     string
	ArticleVersion int
	ArticleContent htmltemplate.HTML
	AuthorName     string
	AuthorAddress  string
	FromName       string
	FromAddress    string
	PortalURL      string
	GroupName      string
}

// mailTemplates holds the subject and body of one kind of change mail.
type mailTemplates struct {
	subject *texttemplate.Template
	body    *htmltemplate.Template
}

func loadMailTemplates(kind string) (mailTemplates, error) {
	subject, err := texttemplate.ParseFS(templateFS, "templates/article_"+kind+"_subject.tmpl")
	if err != nil {
		return mailTemplates{}, err
	}
	body, err := htmltemplate.ParseFS(templateFS, "templates/article_"+kind+"_body.html")
	if err != nil {
		return mailTemplates{}, err
	}
	return mailTemplates{subject: subject, body: body}, nil
}

func (t mailTemplates) render(mc MailContext) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := t.subject.Execute(&buf, mc); err != nil {
		return "", "", err
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := t.body.Execute(&buf, mc); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

// renderText expands a configured sender template such as "{{.AuthorName}} via KB".
func renderText(name, tpl string, mc MailContext) (string, error) {
	if !strings.Contains(tpl, "{{") {
		return tpl, nil
	}
	t, err := texttemplate.New(name).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, mc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
