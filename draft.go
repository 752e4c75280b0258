package jsonschema

// Draft names a JSON Schema dialect this engine understands. Grounded on
// the teacher's hardcoded 2020-12-only Schema struct, generalized into an
// explicit enumerable value so the compiler can dispatch on it instead of
// assuming a single fixed keyword set.
type Draft string

const (
	Draft3       Draft = "draft3"
	Draft4       Draft = "draft4"
	Draft6       Draft = "draft6"
	Draft7       Draft = "draft7"
	Draft2019_09 Draft = "2019-09"
	Draft2020_12 Draft = "2020-12"
	DraftNext    Draft = "draft-next"
)

// vocabulary identifies one of the 2019-09+ pluggable vocabularies. Earlier
// drafts have no $vocabulary keyword, so dialectFor gives them a fixed,
// implicit vocabulary set equivalent to "everything that draft defines".
type vocabulary string

const (
	vocCore             vocabulary = "core"
	vocApplicator       vocabulary = "applicator"
	vocValidation       vocabulary = "validation"
	vocMetaData         vocabulary = "meta-data"
	vocFormatAnnotation vocabulary = "format-annotation"
	vocFormatAssertion  vocabulary = "format-assertion"
	vocContent          vocabulary = "content"
	vocUnevaluated      vocabulary = "unevaluated"
)

// dialect is the resolved, queryable form of a Draft: the id-keyword name,
// the active vocabulary set, and the draft-specific behavior flags the
// keyword catalog and evaluator consult. Built once per Draft and reused
// across every schema compiled against it.
type dialect struct {
	draft Draft

	// idKeyword is "id" for draft3/draft4 and "$id" from draft6 on.
	idKeyword string

	vocabularies map[vocabulary]bool

	// assertFormat reports whether the format keyword rejects instances
	// that fail their named format, rather than merely annotating them.
	// True for draft3 through draft7; false from 2019-09 on, where format
	// asserts only when strictFormat is set.
	assertFormat bool

	// assertContent reports whether contentEncoding/contentMediaType
	// failures are validation errors. True only for draft7.
	assertContent bool

	// hasIf reports whether if/then/else are recognized (draft7+).
	hasIf bool

	// hasUnevaluated reports whether unevaluatedItems/unevaluatedProperties
	// are recognized (2019-09+).
	hasUnevaluated bool

	// dynamicRefStyle selects which of $recursiveRef/$dynamicRef this
	// dialect resolves. "" (draft ≤ draft7) means neither is active.
	dynamicRefStyle string // "recursive" | "dynamic" | ""

	// legacyNumerics reports whether exclusiveMinimum/exclusiveMaximum are
	// booleans modifying minimum/maximum (draft3/draft4) rather than
	// standalone numeric keywords (draft6+).
	legacyNumerics bool

	// legacyRequired reports whether required is a per-property boolean
	// sibling (draft3) rather than a schema-level array of names
	// (draft4+).
	legacyRequired bool

	// hasDraft3Keywords reports whether disallow/extends/divisibleBy are
	// recognized.
	hasDraft3Keywords bool

	// splitDependencies reports whether dependentRequired/
	// dependentSchemas exist as separate keywords (2019-09+) rather than
	// the single draft3-draft7 dependencies keyword.
	splitDependencies bool

	// hasPrefixItems reports whether items/prefixItems are split
	// (2020-12+) rather than items accepting either a schema or a tuple
	// array with a sibling additionalItems (draft3-2019-09).
	hasPrefixItems bool
}

// schemaURIsByDraft lists every $schema URI spelling this engine recognizes
// for each draft, including historical variants.
var schemaURIsByDraft = map[string]Draft{
	"http://json-schema.org/draft-03/schema#": Draft3,
	"http://json-schema.org/draft-04/schema#": Draft4,
	"http://json-schema.org/draft-06/schema#": Draft6,
	"http://json-schema.org/draft-07/schema#": Draft7,
	"https://json-schema.org/draft/2019-09/schema": Draft2019_09,
	"https://json-schema.org/draft/2020-12/schema": Draft2020_12,
	"https://json-schema.org/draft/next/schema":    DraftNext,
}

// draftFromSchemaURI resolves a $schema value to a known Draft, trimming a
// trailing fragment marker some schemas include.
func draftFromSchemaURI(uri string) (Draft, bool) {
	c := canonicalize(uri)
	if d, ok := schemaURIsByDraft[c]; ok {
		return d, true
	}
	d, ok := schemaURIsByDraft[c+"#"]
	return d, ok
}

// dialectFor builds the resolved dialect for a Draft. Every draft is given
// a fixed vocabulary set; a schema's $vocabulary keyword is not read.
func dialectFor(d Draft) *dialect {
	switch d {
	case Draft3:
		return &dialect{
			draft:             Draft3,
			idKeyword:         "id",
			vocabularies:      fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation),
			assertFormat:      true,
			legacyNumerics:    true,
			legacyRequired:    true,
			hasDraft3Keywords: true,
		}
	case Draft4:
		return &dialect{
			draft:          Draft4,
			idKeyword:      "id",
			vocabularies:   fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation),
			assertFormat:   true,
			legacyNumerics: true,
		}
	case Draft6:
		return &dialect{
			draft:        Draft6,
			idKeyword:    "$id",
			vocabularies: fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation),
			assertFormat: true,
		}
	case Draft7:
		return &dialect{
			draft:         Draft7,
			idKeyword:     "$id",
			vocabularies:  fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation, vocContent),
			assertFormat:  true,
			assertContent: true,
			hasIf:         true,
		}
	case Draft2019_09:
		return &dialect{
			draft:            Draft2019_09,
			idKeyword:        "$id",
			vocabularies:     fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation, vocContent, vocUnevaluated),
			assertFormat:     false,
			hasIf:            true,
			hasUnevaluated:   true,
			dynamicRefStyle:  "recursive",
			splitDependencies: true,
		}
	case Draft2020_12:
		return &dialect{
			draft:            Draft2020_12,
			idKeyword:        "$id",
			vocabularies:     fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation, vocContent, vocUnevaluated),
			assertFormat:     false,
			hasIf:            true,
			hasUnevaluated:   true,
			dynamicRefStyle:  "dynamic",
			splitDependencies: true,
			hasPrefixItems:   true,
		}
	case DraftNext:
		return &dialect{
			draft:            DraftNext,
			idKeyword:        "$id",
			vocabularies:     fixedVocab(vocCore, vocApplicator, vocValidation, vocMetaData, vocFormatAnnotation, vocContent, vocUnevaluated),
			assertFormat:     false,
			hasIf:            true,
			hasUnevaluated:   true,
			dynamicRefStyle:  "dynamic",
			splitDependencies: true,
			hasPrefixItems:   true,
		}
	default:
		return dialectFor(Draft2020_12)
	}
}

func fixedVocab(vocs ...vocabulary) map[vocabulary]bool {
	m := make(map[vocabulary]bool, len(vocs))
	for _, v := range vocs {
		m[v] = true
	}
	return m
}

// requiresFormatAssertion reports whether d treats format as an assertion:
// the per-draft assertFormat default, or a format-assertion entry in d's
// vocabulary set. dialectFor's fixed sets never include format-assertion,
// so the result equals assertFormat.
func (d *dialect) requiresFormatAssertion() bool {
	return d.assertFormat || d.vocabularies[vocFormatAssertion]
}
