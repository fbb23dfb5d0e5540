package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

// nameAnalyzer splits on word boundaries and lowercases, keeping digits and
// stop words: swatch names like "No. 91" or "The Blues" must stay findable.
const nameAnalyzer = "colorpal_name"

func buildIndexMapping() (mapping.IndexMapping, error) {
	im := bleve.NewIndexMapping()

	err := im.AddCustomAnalyzer(nameAnalyzer, map[string]any{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []string{lowercase.Name},
	})
	if err != nil {
		return nil, err
	}
	im.DefaultAnalyzer = nameAnalyzer

	doc := bleve.NewDocumentMapping()

	text := func(store, vectors bool) *mapping.FieldMapping {
		f := bleve.NewTextFieldMapping()
		f.Analyzer = nameAnalyzer
		f.Store = store
		f.IncludeTermVectors = vectors
		return f
	}
	kw := func(store bool) *mapping.FieldMapping {
		f := bleve.NewTextFieldMapping()
		f.Analyzer = keyword.Name
		f.Store = store
		return f
	}

	doc.AddFieldMappingsAt("name", text(true, true))
	doc.AddFieldMappingsAt("company", text(true, false))
	doc.AddFieldMappingsAt("code", text(true, false))

	doc.AddFieldMappingsAt("id", kw(false))
	doc.AddFieldMappingsAt("type", kw(true))
	doc.AddFieldMappingsAt("name_exact", kw(false))
	doc.AddFieldMappingsAt("hex", kw(true))
	doc.AddFieldMappingsAt("owner_id", kw(true))
	doc.AddFieldMappingsAt("access", kw(true))
	doc.AddFieldMappingsAt("email", kw(false))

	updated := bleve.NewNumericFieldMapping()
	updated.Store = true
	doc.AddFieldMappingsAt("updated_at", updated)

	im.AddDocumentMapping("_default", doc)
	return im, nil
}
