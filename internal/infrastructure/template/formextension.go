package template

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
)

const formThemeDir = "form"

// FormView is the view model of one rendered form or form field.
// BlockPrefixes run from the most generic to the most specific.
type FormView struct {
	Name          string
	BlockPrefixes []string
	Vars          map[string]any
}

// FormRenderer renders theme blocks for a form view.
type FormRenderer interface {
	SearchAndRenderBlock(view *FormView, blockNameSuffix string) (htmltemplate.HTML, error)
}

var ErrBlockNotFound = errors.New("no form block found")

// FormExtension exposes the form_javascript and form_stylesheet template functions.
type FormExtension struct {
	renderer FormRenderer
}

func NewFormExtension(renderer FormRenderer) *FormExtension {
	return &FormExtension{renderer: renderer}
}

func (e *FormExtension) Funcs() htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"form_javascript": e.RenderJavascript,
		"form_stylesheet": e.RenderStylesheet,
	}
}

// RenderJavascript renders the "javascript" block, or "javascript_prototype"
// when the first optional argument is true.
func (e *FormExtension) RenderJavascript(view *FormView, prototype ...bool) (htmltemplate.HTML, error) {
	block := "javascript"
	if len(prototype) > 0 && prototype[0] {
		block = "javascript_prototype"
	}
	return e.renderer.SearchAndRenderBlock(view, block)
}

func (e *FormExtension) RenderStylesheet(view *FormView) (htmltemplate.HTML, error) {
	return e.renderer.SearchAndRenderBlock(view, "stylesheet")
}

// BlockRenderer resolves blocks named <prefix>_<suffix> in a form theme,
// trying the most specific prefix first.
type BlockRenderer struct {
	theme *htmltemplate.Template
}

// NewBlockRenderer parses the embedded form theme.
func NewBlockRenderer() (*BlockRenderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	return NewBlockRendererFromFS(sub)
}

// NewBlockRendererFromFS parses every form/*.html file of fsys as the theme.
func NewBlockRendererFromFS(fsys fs.FS) (*BlockRenderer, error) {
	theme, err := htmltemplate.New(formThemeDir).ParseFS(fsys, formThemeDir+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse form theme: %w", err)
	}
	return &BlockRenderer{theme: theme}, nil
}

func (r *BlockRenderer) SearchAndRenderBlock(view *FormView, blockNameSuffix string) (htmltemplate.HTML, error) {
	if view == nil {
		return "", fmt.Errorf("cannot render block %q of a nil form view", blockNameSuffix)
	}

	tried := make([]string, 0, len(view.BlockPrefixes))
	for i := len(view.BlockPrefixes) - 1; i >= 0; i-- {
		name := view.BlockPrefixes[i] + "_" + blockNameSuffix
		t := r.theme.Lookup(name)
		if t == nil {
			tried = append(tried, name)
			continue
		}

		var buf bytes.Buffer
		data := map[string]any{
			"form": view,
			"vars": view.Vars,
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to render form block %s: %w", name, err)
		}
		// The theme is itself an html/template, so its output is already escaped.
		return htmltemplate.HTML(buf.String()), nil
	}

	return "", fmt.Errorf("%w for %q, tried: %s", ErrBlockNotFound, view.Name, strings.Join(tried, ", "))
}
