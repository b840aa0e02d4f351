package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	funcs := createTemplateFuncs(&t)
	var err error
	t, err = template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderPartial renders only the main content area.
func (r *TemplateRenderer) RenderPartial(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "content", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

// createTemplateFuncs builds the function map shared by all templates. The
// template pointer is captured by reference so renderContent can dispatch to
// templates that are still being parsed when the func map is created.
func createTemplateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"renderContent": func(data any) (template.HTML, error) {
			name := "dashboard-content"
			if m, ok := data.(map[string]any); ok {
				if page, pageOK := m["CurrentPage"].(string); pageOK {
					name = ContentTemplateFor(page)
				}
			}
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			//nolint:gosec // content templates are trusted, parsed from the embedded FS
			return template.HTML(buf.String()), nil
		},
		"formatMoney":    formatMoney,
		"formatDateTime": formatDateTime,
		"titleCase":      titleCase,
	}
}

// formatMoney renders an amount with thousands separators and two decimals,
// e.g. 1234567.5 → "1,234,567.50".
func formatMoney(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return fmt.Sprintf("%s%s.%s", sign, b.String(), fracPart)
}

// formatDateTime renders a backend timestamp for display. The services emit
// zone-less timestamps like "2026-08-30T12:34:56.789"; anything unparseable is
// shown as-is rather than hidden.
func formatDateTime(raw string) string {
	if raw == "" {
		return ""
	}
	value := raw
	// Drop fractional seconds, the display format doesn't use them
	if idx := strings.IndexByte(value, '.'); idx != -1 {
		value = value[:idx]
	}
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return raw
	}
	return parsed.Format("Jan 2, 2006 3:04 PM")
}

// titleCase renders backend enum values for display, e.g. "SAVINGS" → "Savings".
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
