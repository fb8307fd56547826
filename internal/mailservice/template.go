package mailservice

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*
var templateFS embed.FS

// templateBlocks are the definitions every e-mail template must provide.
var templateBlocks = [...]string{"subject", "plainBody", "htmlBody"}

func NewTemplate() *Template {
	return &Template{parsed: make(map[string]*template.Template)}
}

func (tp *Template) lookup(name string) (*template.Template, error) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	if t, ok := tp.parsed[name]; ok {
		return t, nil
	}

	t, err := template.New("email").ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("could not parse template: %w", err)
	}

	for _, block := range templateBlocks {
		if t.Lookup(block) == nil {
			return nil, fmt.Errorf("template %s does not define %q", name, block)
		}
	}

	tp.parsed[name] = t
	return t, nil
}

// Render executes the subject, plainBody and htmlBody blocks of the named template.
func (tp *Template) Render(name string, data any) (*renderedMail, error) {
	t, err := tp.lookup(name)
	if err != nil {
		return nil, err
	}

	var out [len(templateBlocks)]string
	for i, block := range templateBlocks {
		var b strings.Builder
		if err := t.ExecuteTemplate(&b, block, data); err != nil {
			return nil, fmt.Errorf("could not render %s of %s: %w", block, name, err)
		}
		out[i] = b.String()
	}

	return &renderedMail{
		Subject:   strings.TrimSpace(out[0]),
		PlainBody: out[1],
		HTMLBody:  out[2],
	}, nil
}
