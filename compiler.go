package jsonschema

import (
	"context"
	"embed"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

//go:embed metaschemas/*.json
var metaschemaFS embed.FS

// metaschemaFiles maps each bundled meta-schema file to the canonical URI
// it is registered under, per spec §6's "bundled meta-schemas...indexed by
// base URI prefix (http(s)://json-schema.org)". Grounded on draft.go's own
// schemaURIsByDraft table, which already lists every dialect's canonical
// $schema value.
var metaschemaFiles = map[string]string{
	"metaschemas/draft-03.json": "http://json-schema.org/draft-03/schema#",
	"metaschemas/draft-04.json": "http://json-schema.org/draft-04/schema#",
	"metaschemas/draft-06.json": "http://json-schema.org/draft-06/schema#",
	"metaschemas/draft-07.json": "http://json-schema.org/draft-07/schema#",
	"metaschemas/2019-09.json":  "https://json-schema.org/draft/2019-09/schema",
	"metaschemas/2020-12.json":  "https://json-schema.org/draft/2020-12/schema",
	"metaschemas/next.json":     "https://json-schema.org/draft/next/schema",
}

// Compiler is the C8 compiler: a reusable, builder-configured object that
// walks schema documents and produces executable plan trees. Grounded on
// the teacher's Compiler in compiler.go — this engine keeps its builder
// style (WithX/RegisterX methods returning *Compiler) but replaces the
// fixed single-draft *Schema cache with a registry of plan nodes shared
// across every compiled document and every supported draft.
type Compiler struct {
	mu sync.RWMutex

	registry *registry

	decoders   map[string]func(string) ([]byte, error)
	mediaTypes map[string]func([]byte) (any, error)

	defaultBaseURI string
	defaultDraft   Draft
	strictFormat   bool
	strictInteger  bool

	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error

	patterns *patternCache
	formats  *formatRegistry
}

// NewCompiler creates a Compiler with the teacher's default wiring: the
// goccy/go-json codec, base64 content decoding, JSON/XML/YAML media type
// handlers, and http(s) schema loaders.
func NewCompiler() *Compiler {
	c := &Compiler{
		decoders:     make(map[string]func(string) ([]byte, error)),
		mediaTypes:   make(map[string]func([]byte) (any, error)),
		defaultDraft: Draft2020_12,
		jsonEncoder:  func(v any) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder:  func(data []byte, v any) error { return json.Unmarshal(data, v) },
		patterns:     newPatternCache(),
		formats:      newFormatRegistry(),
	}
	c.registry = newRegistry(compileAt)
	c.registry.patterns = c.patterns
	c.registry.formats = c.formats
	c.registry.decoders = c.decoders
	c.registry.mediaTypes = c.mediaTypes
	c.initDefaults()
	return c
}

// WithEncoderJSON configures a custom JSON encoder implementation.
func (c *Compiler) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Compiler {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON configures a custom JSON decoder implementation.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte, v any) error) *Compiler {
	c.jsonDecoder = decoder
	return c
}

// SetDefaultBaseURI sets the base URI used to resolve relative $id/$ref
// values when a compiled document declares none of its own.
func (c *Compiler) SetDefaultBaseURI(baseURI string) *Compiler {
	c.defaultBaseURI = baseURI
	return c
}

// SetDefaultDraft sets the dialect assumed for documents with no $schema.
func (c *Compiler) SetDefaultDraft(d Draft) *Compiler {
	c.defaultDraft = d
	return c
}

// SetStrictFormat enables format assertion even for dialects (2019-09+)
// where format is an annotation by default.
func (c *Compiler) SetStrictFormat(strict bool) *Compiler {
	c.strictFormat = strict
	c.registry.strictFormat = strict
	return c
}

// SetStrictInteger records the strictInteger setting on the compiler and its
// registry. No keyword checker reads it: type "integer" accepts every
// whole-valued number, including one written as 1.0, whether or not it is
// set.
func (c *Compiler) SetStrictInteger(strict bool) *Compiler {
	c.strictInteger = strict
	c.registry.strictInteger = strict
	return c
}

// RegisterFormat installs a custom format predicate, optionally restricted
// to one JSON Schema kind, grounded on the teacher's
// Compiler.RegisterFormat.
func (c *Compiler) RegisterFormat(name string, validate func(any) bool, appliesTo ...kind) *Compiler {
	var k kind
	if len(appliesTo) > 0 {
		k = appliesTo[0]
	}
	c.formats.register(name, validate, k)
	return c
}

// UnregisterFormat removes the predicate registered under name, built-in or
// custom; the name is then an unknown format, which never fails validation.
func (c *Compiler) UnregisterFormat(name string) *Compiler {
	c.formats.unregister(name)
	return c
}

// RegisterDecoder adds a contentEncoding decoder, e.g. "base64".
func (c *Compiler) RegisterDecoder(name string, fn func(string) ([]byte, error)) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[name] = fn
	return c
}

// RegisterMediaType adds a contentMediaType unmarshaler, e.g.
// "application/json".
func (c *Compiler) RegisterMediaType(name string, fn func([]byte) (any, error)) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mediaTypes[name] = fn
	return c
}

// RegisterLoader installs the uri->schema host capability for a URI
// scheme, grounded on the teacher's RegisterLoader/Loaders map. Unlike the
// teacher, loaders here return raw bytes rather than io.ReadCloser, since
// closing lives entirely inside the loader.
func (c *Compiler) RegisterLoader(scheme string, loader SchemaLoader) *Compiler {
	c.registry.loader = wrapSchemeLoader(c.registry.loader, scheme, loader)
	return c
}

// wrapSchemeLoader builds a combined SchemaLoader dispatching on URI
// scheme, since registry.loader is a single function rather than a
// scheme-keyed map (the registry has no notion of URI schemes; only the
// compiler's convenience registration API does).
func wrapSchemeLoader(prev SchemaLoader, scheme string, loader SchemaLoader) SchemaLoader {
	return func(uri string) ([]byte, error) {
		if uriScheme(uri) == scheme {
			return loader(uri)
		}
		if prev != nil {
			return prev(uri)
		}
		return nil, fmt.Errorf("%w: %s", ErrNoLoaderRegistered, uri)
	}
}

func (c *Compiler) initDefaults() {
	c.decoders["base64"] = base64.StdEncoding.DecodeString
	c.mediaTypes["application/json"] = func(data []byte) (any, error) {
		var v any
		if err := c.jsonDecoder(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		return v, nil
	}
	c.mediaTypes["application/xml"] = func(data []byte) (any, error) {
		var v any
		if err := xml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		return v, nil
	}
	c.mediaTypes["application/yaml"] = func(data []byte) (any, error) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		return v, nil
	}

	client := &http.Client{Timeout: 10 * time.Second}
	httpLoader := func(uri string) ([]byte, error) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRemoteFetch, err)
		}
		defer resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d", ErrRemoteFetch, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	c.RegisterLoader("http", httpLoader)
	c.RegisterLoader("https", httpLoader)

	c.loadBundledMetaschemas()
}

// loadBundledMetaschemas registers every embedded json-schema.org
// meta-schema document directly into the registry, so resolving a $ref or
// $schema to one of these URIs never touches the loader (http/https
// above), matching spec §6's "resolver maps these prefixes to...embedded
// resources". Any other URI still falls through to the registered
// loader(s).
func (c *Compiler) loadBundledMetaschemas() {
	for file, uri := range metaschemaFiles {
		raw, err := metaschemaFS.ReadFile(file)
		if err != nil {
			panic(fmt.Sprintf("jsonschema: embedded meta-schema %s missing: %v", file, err))
		}
		doc, err := decodeJSON(raw)
		if err != nil {
			panic(fmt.Sprintf("jsonschema: embedded meta-schema %s invalid: %v", file, err))
		}
		c.registry.registerDocument(uri, doc)
	}
}

// CompiledSchema is the public handle on a compiled plan tree: the root
// plan node plus the shared registry/format/pattern state needed to
// evaluate data against it.
type CompiledSchema struct {
	compiler *Compiler
	root     planID
	baseURI  string
}

// Compile decodes schemaJSON, determines its dialect from $schema (falling
// back to the compiler's default draft), and compiles it into a plan tree,
// per spec §4.4. uris, if given, supplies the base URI a document with no
// $id should be registered and resolved under.
func (c *Compiler) Compile(schemaJSON []byte, uris ...string) (*CompiledSchema, error) {
	var doc any
	if err := c.jsonDecoder(schemaJSON, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompilation, err)
	}

	baseURI := c.defaultBaseURI
	if len(uris) > 0 {
		baseURI = uris[0]
	}
	d := dialectFor(c.draftOf(doc))

	if obj, ok := doc.(map[string]any); ok {
		if id, ok := obj[d.idKeyword].(string); ok && id != "" {
			baseURI = resolveURI(baseURI, id)
		}
	}
	baseURI = canonicalize(baseURI)

	c.registry.registerDocument(baseURI, doc)

	id, err := compileAt(c.registry, doc, baseURI, "", d)
	if err != nil {
		return nil, err
	}
	return &CompiledSchema{compiler: c, root: id, baseURI: baseURI}, nil
}

// CompileBatch compiles a set of interdependent schemas in one call: every
// document is registered before any $ref within them is resolved, so
// mutual/forward references across the set succeed regardless of
// compilation order. Grounded on the teacher's CompileBatch two-pass
// design.
func (c *Compiler) CompileBatch(schemas map[string][]byte) (map[string]*CompiledSchema, error) {
	docs := make(map[string]any, len(schemas))
	drafts := make(map[string]*dialect, len(schemas))

	ids := make([]string, 0, len(schemas))
	for id := range schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		var doc any
		if err := c.jsonDecoder(schemas[id], &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSchemaCompilation, id, err)
		}
		d := dialectFor(c.draftOf(doc))
		baseURI := id
		if obj, ok := doc.(map[string]any); ok {
			if declared, ok := obj[d.idKeyword].(string); ok && declared != "" {
				baseURI = resolveURI(id, declared)
			}
		}
		baseURI = canonicalize(baseURI)
		docs[baseURI] = doc
		drafts[baseURI] = d
		c.registry.registerDocument(baseURI, doc)
	}

	out := make(map[string]*CompiledSchema, len(schemas))
	for _, id := range ids {
		// Recompute baseURI the same way so out is keyed consistently.
		var doc any
		_ = c.jsonDecoder(schemas[id], &doc)
		d := dialectFor(c.draftOf(doc))
		baseURI := id
		if obj, ok := doc.(map[string]any); ok {
			if declared, ok := obj[d.idKeyword].(string); ok && declared != "" {
				baseURI = resolveURI(id, declared)
			}
		}
		baseURI = canonicalize(baseURI)

		planID, err := compileAt(c.registry, docs[baseURI], baseURI, "", drafts[baseURI])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSchemaCompilation, id, err)
		}
		out[id] = &CompiledSchema{compiler: c, root: planID, baseURI: baseURI}
	}
	return out, nil
}

// draftOf determines a document's dialect from its $schema keyword,
// falling back to the compiler's configured default.
func (c *Compiler) draftOf(doc any) Draft {
	obj, ok := doc.(map[string]any)
	if !ok {
		return c.defaultDraft
	}
	s, ok := obj["$schema"].(string)
	if !ok {
		return c.defaultDraft
	}
	if d, ok := draftFromSchemaURI(s); ok {
		return d
	}
	return c.defaultDraft
}

// decodeJSON decodes raw bytes fetched by a SchemaLoader into a generic
// JSON value, using the package default codec (goccy/go-json), the same
// library the teacher defaults to.
func decodeJSON(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
