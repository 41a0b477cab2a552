// Package template renders the email bodies and HTML pages from the embedded
// template tree, with translations bound to an explicit locale per call.
package template

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	texttemplate "text/template"

	"secretsanta/internal/shared/logger"
	"secretsanta/internal/shared/services/markdown"
)

//go:embed templates
var templatesFS embed.FS

// DateLayout is how event dates appear in mails and pages.
const DateLayout = "02/01/2006"

// Translator resolves message keys for an explicit locale.
type Translator interface {
	Translate(locale, key string) string
}

// Renderer holds two parsed template sets: *.html through html/template and
// *.txt through text/template. The sets are never executed directly; every
// Render works on a clone with "trans" bound to the requested locale.
type Renderer struct {
	html       *htmltemplate.Template
	text       *texttemplate.Template
	translator Translator
	logger     logger.Interface
}

// NewRenderer parses the embedded emails/ and pages/ trees.
func NewRenderer(translator Translator, md markdown.MarkdownService, forms *FormExtension, log logger.Interface) (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	return NewRendererFromFS(sub, translator, md, forms, log)
}

// NewRendererFromFS parses every .html and .txt file under fsys except the
// form theme. Templates are named by their slash path, e.g. "emails/reuse.txt".
func NewRendererFromFS(fsys fs.FS, translator Translator, md markdown.MarkdownService, forms *FormExtension, log logger.Interface) (*Renderer, error) {
	htmlFuncs := htmltemplate.FuncMap{
		"trans": unboundTrans,
		"date":  formatDate,
		"markdown": func(s string) (htmltemplate.HTML, error) {
			out, err := md.ToHTMLSanitized(s)
			if err != nil {
				return "", err
			}
			// Sanitized by the markdown service's policy.
			return htmltemplate.HTML(out), nil
		},
	}
	if forms != nil {
		for name, fn := range forms.Funcs() {
			htmlFuncs[name] = fn
		}
	}
	textFuncs := texttemplate.FuncMap{
		"trans": unboundTrans,
		"date":  formatDate,
	}

	htmlSet := htmltemplate.New("").Funcs(htmlFuncs)
	textSet := texttemplate.New("").Funcs(textFuncs)

	var htmlCount, textCount int
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == formThemeDir {
				return fs.SkipDir
			}
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", p, err)
		}

		switch path.Ext(p) {
		case ".html":
			if _, err := htmlSet.New(p).Parse(string(content)); err != nil {
				return fmt.Errorf("failed to parse template %s: %w", p, err)
			}
			htmlCount++
		case ".txt":
			if _, err := textSet.New(p).Parse(string(content)); err != nil {
				return fmt.Errorf("failed to parse template %s: %w", p, err)
			}
			textCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("templates loaded", "html", htmlCount, "text", textCount)

	return &Renderer{
		html:       htmlSet,
		text:       textSet,
		translator: translator,
		logger:     log,
	}, nil
}

// Render executes the named template with every trans call resolved in locale.
func (r *Renderer) Render(locale, name string, data map[string]any) (string, error) {
	trans := func(key string) string {
		return r.translator.Translate(locale, key)
	}

	var buf bytes.Buffer
	if strings.HasSuffix(name, ".txt") {
		if r.text.Lookup(name) == nil {
			return "", fmt.Errorf("template %s not found", name)
		}
		t, err := r.text.Clone()
		if err != nil {
			return "", fmt.Errorf("failed to clone text templates: %w", err)
		}
		if err := t.Funcs(texttemplate.FuncMap{"trans": trans}).ExecuteTemplate(&buf, name, data); err != nil {
			return "", fmt.Errorf("failed to render %s: %w", name, err)
		}
		return buf.String(), nil
	}

	if r.html.Lookup(name) == nil {
		return "", fmt.Errorf("template %s not found", name)
	}
	t, err := r.html.Clone()
	if err != nil {
		return "", fmt.Errorf("failed to clone html templates: %w", err)
	}
	if err := t.Funcs(htmltemplate.FuncMap{"trans": trans}).ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func unboundTrans(key string) string {
	return key
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
