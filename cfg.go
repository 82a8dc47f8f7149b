package cfg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-cfg/diag"
	"github.com/0xalexb/hjarta-cfg/fetch"
	filefetch "github.com/0xalexb/hjarta-cfg/fetch/file"
)

// Parser owns the section store built from one or more configuration
// files. It is not safe for concurrent use: load it once, then query and
// mutate it from a single goroutine at a time.
type Parser struct {
	name        string
	sections    map[string]*Section
	basePath    string
	currentFile string
	fetcher     fetch.Fetcher
	sink        diag.Sink
}

// New creates a parser with the given name. The name prefixes the
// default diagnostic output. By default files are read from the
// filesystem and diagnostics are written to standard output.
func New(name string, opts ...Option) *Parser {
	options := Options{
		Fetcher: filefetch.New(),
	}

	for _, apply := range opts {
		apply(&options)
	}

	sink := options.Sink
	if sink == nil {
		if options.Logger != nil {
			sink = diag.LoggerSink(options.Logger)
		} else {
			sink = diag.WriterSink(os.Stdout, name)
		}
	}

	return &Parser{
		name:     name,
		sections: make(map[string]*Section),
		basePath: options.BasePath,
		fetcher:  options.Fetcher,
		sink:     sink,
	}
}

// Name returns the parser's name.
func (p *Parser) Name() string {
	return p.name
}

// SetBasePath sets the directory against which #include targets are resolved.
func (p *Parser) SetBasePath(path string) {
	p.basePath = path
}

// SetSink replaces the diagnostics sink. A nil sink silences replay.
func (p *Parser) SetSink(sink diag.Sink) {
	p.sink = sink
}

// Load fetches and parses the file at path into the section store,
// following #include directives recursively. Parse findings never abort
// the load; they are replayed through the sink and returned in order.
// The returned error is non-nil only when the root file itself cannot
// be fetched.
//
// Included files share the store, so section names are unique across
// the whole inclusion tree. There is no include-cycle detection: a file
// that transitively includes itself recurses without bound.
func (p *Parser) Load(path string) (diag.List, error) {
	data, err := p.fetcher.Fetch(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}

	p.currentFile = path

	var diags diag.List

	p.parse(data, &diags)
	diags.Replay(p.sink)

	return diags, nil
}

// LoadData parses configuration bytes directly into the section store.
// Include directives still resolve through the configured fetcher.
func (p *Parser) LoadData(data []byte) diag.List {
	var diags diag.List

	p.parse(data, &diags)
	diags.Replay(p.sink)

	return diags
}

// parse runs one state machine over data. Includes re-enter parse
// recursively through includeFile, sharing the store and the diagnostic
// list; each stream gets its own line and column tracking.
func (p *Parser) parse(data []byte, diags *diag.List) {
	m := newMachine(p.sections, diags, func(path string) {
		p.includeFile(path, diags)
	})

	m.run(data)
}

// includeFile resolves and parses one #include target. A failed fetch
// downgrades to a diagnostic so the including stream continues; the
// current-file name is restored once the included file is consumed.
func (p *Parser) includeFile(path string, diags *diag.List) {
	target := path
	if p.basePath != "" {
		target = filepath.Join(p.basePath, path)
	}

	data, err := p.fetcher.Fetch(target)
	if err != nil {
		diags.Add(diag.Record{Message: fmt.Sprintf("Cannot open file \"%s\".", target)})

		return
	}

	previous := p.currentFile
	p.currentFile = target

	p.parse(data, diags)

	p.currentFile = previous
}

// report sends one non-positional message through the sink. Query-time
// findings bypass the diagnostic list because there is no parse pass to
// attach them to.
func (p *Parser) report(format string, args ...any) {
	if p.sink == nil {
		return
	}

	p.sink(fmt.Sprintf(format, args...))
}
