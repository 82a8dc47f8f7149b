package cfg

// HasSection reports whether a section with the given name was parsed.
func (p *Parser) HasSection(section string) bool {
	_, ok := p.sections[section]

	return ok
}

// HasKey reports whether the section holds the key in its own value
// table. Inherited values do not count. A missing section is reported
// through the sink.
func (p *Parser) HasKey(section, key string) bool {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return false
	}

	_, ok = data.Values[key]

	return ok
}

// HasAttribute reports whether the section carries the attribute flag.
func (p *Parser) HasAttribute(section, attribute string) bool {
	data, ok := p.sections[section]
	if !ok {
		return false
	}

	for _, a := range data.Attributes {
		if a == attribute {
			return true
		}
	}

	return false
}

// HasAttributes reports whether the section carries any attribute flags.
// A missing section is reported through the sink.
func (p *Parser) HasAttributes(section string) bool {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return false
	}

	return len(data.Attributes) > 0
}

// GetAttributes returns the section's attribute flags in declaration
// order. A missing section is reported through the sink and yields nil.
func (p *Parser) GetAttributes(section string) []string {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return nil
	}

	return data.Attributes
}

// IsInheritedFrom reports whether the section directly inherits from
// base. Only edges recorded at parse time count, so a base that was
// never declared always yields false.
func (p *Parser) IsInheritedFrom(section, base string) bool {
	data, ok := p.sections[section]
	if !ok {
		return false
	}

	for _, inherited := range data.Inheritances {
		if inherited == base {
			return true
		}
	}

	return false
}

// HasInheritances reports whether the section inherits from anything.
// A missing section is reported through the sink.
func (p *Parser) HasInheritances(section string) bool {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return false
	}

	return len(data.Inheritances) > 0
}

// GetInheritances returns the section's inheritance list in declaration
// order. A missing section is reported through the sink and yields nil.
func (p *Parser) GetInheritances(section string) []string {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return nil
	}

	return data.Inheritances
}

// GetString resolves a key to its string value.
//
// The section's own value wins, even when empty. Otherwise the
// inheritance list is walked in declaration order and the first
// inherited section whose own table holds a non-empty value for the key
// supplies it. The walk is one level deep on purpose: it never recurses
// into an inherited section's own inheritances. When nothing matches,
// or the section does not exist, def is returned without diagnostics.
func (p *Parser) GetString(section, key, def string) string {
	data, ok := p.sections[section]
	if !ok {
		return def
	}

	if value, ok := data.Values[key]; ok {
		return value
	}

	if value := p.valueFromInheritance(data, key); value != "" {
		return value
	}

	return def
}

func (p *Parser) valueFromInheritance(data *Section, key string) string {
	for _, inherited := range data.Inheritances {
		base, ok := p.sections[inherited]
		if !ok {
			continue
		}

		if value, ok := base.Values[key]; ok {
			return value
		}
	}

	return ""
}

// SetString overwrites the value of an existing key. It is the only
// mutation the store supports after a load: unknown sections and keys
// are reported through the sink and left untouched, never created.
func (p *Parser) SetString(section, key, value string) {
	data, ok := p.sections[section]
	if !ok {
		p.report("Section \"%s\" is not exist!", section)

		return
	}

	if _, ok := data.Values[key]; !ok {
		p.report("Section \"%s\" key \"%s\" is not exist!", section, key)

		return
	}

	data.Values[key] = value
}

// SectionCount returns the number of parsed sections.
func (p *Parser) SectionCount() int {
	return len(p.sections)
}

// Sections returns the whole section store. The map is the parser's
// own; treat it as read-only.
func (p *Parser) Sections() map[string]*Section {
	return p.sections
}
