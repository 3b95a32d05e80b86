// Package message собирает тексты уведомлений из шаблонов text/template со sprig функциями.
package message

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"pullRequests24/internal/domain"
)

// TwitterMessageKey - ключ шаблона твита о новом PR
const TwitterMessageKey = "pull_request.twitter_message"

// DefaultTemplates - встроенный каталог шаблонов
var DefaultTemplates = map[string]string{
	TwitterMessageKey: `I just made a pull request to an open source project as part of #24pullrequests: {{ .issue_url | trim }}`,
}

// Formatter реализует domain.MessageFormatter
type Formatter struct {
	templates map[string]*template.Template
}

var _ domain.MessageFormatter = (*Formatter)(nil)

// NewFormatter компилирует каталог шаблонов; ошибка в любом шаблоне - ошибка конструктора
func NewFormatter(catalog map[string]string) (*Formatter, error) {
	funcMap := sprig.TxtFuncMap()

	templates := make(map[string]*template.Template, len(catalog))
	for key, text := range catalog {
		tmpl, err := template.New(key).Funcs(funcMap).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", key, err)
		}
		templates[key] = tmpl
	}

	return &Formatter{templates: templates}, nil
}

// Format подставляет values в шаблон key
func (f *Formatter) Format(key string, values map[string]any) (string, error) {
	tmpl, ok := f.templates[key]
	if !ok {
		return "", fmt.Errorf("unknown message template %q", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("execute template %q: %w", key, err)
	}
	return buf.String(), nil
}
