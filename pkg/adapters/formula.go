package adapters

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

type ctxDocument struct {
	Fields []ctxField `xml:"field"`
}

type ctxField struct {
	Name         string  `xml:"name,attr"`
	Formula      *string `xml:"formula"`
	Dependencies string  `xml:"dependencies"`
}

type formulaXML struct{}

// NewFormulaXML decodes CTX formula documents:
//
//	<root>
//	  <field name="monthly_cost">
//	    <formula>annual_premium / 12</formula>
//	    <dependencies>annual_premium</dependencies>
//	  </field>
//	</root>
//
// Fields without a formula element are skipped.
func NewFormulaXML() Adapter {
	return formulaXML{}
}

func (formulaXML) Name() string { return "ctx-formula-xml" }

func (formulaXML) Role() Role { return RoleFormula }

func (formulaXML) Detect(src sources.Source, raw []byte) bool {
	if extOf(src) == ".xml" {
		return true
	}
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(raw, utf8BOM))
	return len(trimmed) > 0 && trimmed[0] == '<'
}

func (formulaXML) Decode(_ context.Context, doc sources.Document) (sources.Bundle, error) {
	var parsed ctxDocument
	if err := xml.Unmarshal(doc.Raw(), &parsed); err != nil {
		return sources.Bundle{}, fmt.Errorf("parse xml: %w", err)
	}

	formulas := make([]sources.Formula, 0, len(parsed.Fields))
	for _, field := range parsed.Fields {
		if field.Formula == nil {
			continue
		}
		formulas = append(formulas, sources.Formula{
			FieldName:    strings.TrimSpace(field.Name),
			Formula:      strings.TrimSpace(*field.Formula),
			Dependencies: splitDependencies(field.Dependencies),
		})
	}
	return sources.Bundle{Formulas: formulas}, nil
}

func splitDependencies(raw string) []string {
	var out []string
	for _, dep := range strings.Split(raw, ",") {
		if dep = strings.TrimSpace(dep); dep != "" {
			out = append(out, dep)
		}
	}
	return out
}
