package figma

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

const (
	defaultSection = "default"
	defaultKind    = "text"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// ExtractFields walks node depth-first and returns one design field per
// label-like TEXT node. Order starts at 1; the section is the parent node's
// name, or "default" at the root or for unnamed parents.
func ExtractFields(node Node) []sources.DesignField {
	ex := &extractor{order: 1}
	ex.walk(node, "")
	return ex.fields
}

type extractor struct {
	order  int
	fields []sources.DesignField
}

func (e *extractor) walk(node Node, section string) {
	if node.Type == NodeTypeText && isLabel(node.Characters) {
		if section == "" {
			section = defaultSection
		}
		e.fields = append(e.fields, sources.DesignField{
			Label:   labelText(node.Characters),
			Kind:    defaultKind,
			Order:   e.order,
			Section: section,
		})
		e.order++
	}
	for _, child := range node.Children {
		e.walk(child, node.Name)
	}
}

func isLabel(text string) bool {
	if strings.HasSuffix(text, ":") {
		return true
	}
	return text != "" && text[0] >= 'A' && text[0] <= 'Z'
}

// labelText drops the first colon, strips markup and trims.
func labelText(text string) string {
	text = strings.Replace(text, ":", "", 1)
	cleaned := textSanitizer().Sanitize(text)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
