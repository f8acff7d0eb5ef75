// Package prompts renders editor requests into the single user turn sent to
// the model. Templates are embedded YAML; fields are inserted verbatim.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type templateFile struct {
	Version   string            `yaml:"version"`
	Templates map[string]string `yaml:"templates"`
}

const (
	nameSuggestions = "suggestions"
	nameGenerate    = "generate"
)

var (
	suggestionsTmpl *template.Template
	generateTmpl    *template.Template
)

func init() {
	set, err := parseTemplates(templatesYAML)
	if err != nil {
		panic(err)
	}

	suggestionsTmpl = set[nameSuggestions]
	generateTmpl = set[nameGenerate]
}

// parses the YAML document and compiles every required template
func parseTemplates(data []byte) (map[string]*template.Template, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	set := make(map[string]*template.Template, len(file.Templates))

	for _, name := range []string{nameSuggestions, nameGenerate} {
		text, ok := file.Templates[name]
		if !ok {
			return nil, fmt.Errorf("prompt template %q is missing", name)
		}

		tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to compile prompt template %q: %w", name, err)
		}

		set[name] = tmpl
	}

	return set, nil
}

type suggestionsData struct {
	FullCode     string
	SelectedLine string
}

type generateData struct {
	FullCode    string
	Title       string
	Description string
}

// builds the prompt asking for four Title/Description suggestions about selectedLine
func Suggestions(fullCode, selectedLine string) string {
	return render(suggestionsTmpl, suggestionsData{
		FullCode:     fullCode,
		SelectedLine: selectedLine,
	})
}

// builds the prompt asking for the full updated file after applying a suggestion
func Generate(fullCode, title, description string) string {
	return render(generateTmpl, generateData{
		FullCode:    fullCode,
		Title:       title,
		Description: description,
	})
}

// templates only reference fields of plain string structs, so execution
// cannot fail once init has compiled them
func render(tmpl *template.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		panic(fmt.Sprintf("prompts: executing %s: %v", tmpl.Name(), err))
	}

	return sb.String()
}
