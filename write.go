package cfg

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Write serializes the section store: one block per section with the
// header, the key/value lines and a blank separator line. Sections and
// keys are emitted in sorted order so output is deterministic; loading
// the result back produces a content-equal store.
//
// Values are emitted verbatim. A value that needed quoting in the
// source (embedded newlines, spaces) is written unquoted, matching the
// plain re-emission this format has always done.
func (p *Parser) Write(w io.Writer) error {
	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder

	for _, name := range names {
		section := p.sections[name]

		b.WriteByte('[')
		b.WriteString(name)
		b.WriteByte(']')

		if len(section.Inheritances) > 0 {
			b.WriteString(" : ")
			b.WriteString(strings.Join(section.Inheritances, ", "))
		}

		if len(section.Attributes) > 0 {
			b.WriteString(" = ")
			b.WriteString(strings.Join(section.Attributes, ", "))
		}

		b.WriteByte('\n')

		keys := make([]string, 0, len(section.Values))
		for key := range section.Values {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			b.WriteString(key)
			b.WriteString(" = ")
			b.WriteString(section.Values[key])
			b.WriteByte('\n')
		}

		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Save writes the serialized store to the file at path.
func (p *Parser) Save(path string) error {
	file, err := os.Create(path) // #nosec G304 -- destination chosen by the caller
	if err != nil {
		return fmt.Errorf("creating file %q: %w", path, err)
	}

	writeErr := p.Write(file)

	closeErr := file.Close()
	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("closing file %q: %w", path, closeErr)
	}

	return nil
}

// SaveCurrent writes the store back to the last loaded file.
func (p *Parser) SaveCurrent() error {
	return p.Save(p.currentFile)
}
