package cfg

import (
	"fmt"

	"github.com/0xalexb/hjarta-cfg/diag"
)

// state enumerates the positions of the parsing state machine.
// newLine is the initial state and the state re-entered after every
// successfully terminated statement; there is no terminal state, the end
// of input simply stops consumption.
type state uint8

const (
	stateNewLine state = iota
	stateSection
	stateInheritance
	stateAttribute
	stateKey
	stateValue
	stateValueArray
	stateStringValue
	stateComment
	stateMultilineComment
	statePreprocessor
	stateInclude
	stateError
)

const (
	commentCharacter = ';'
	commentMultiline = '|'
)

// machine consumes one configuration stream byte by byte and writes the
// sections it produces into a shared store. One machine handles exactly
// one stream; included files get their own machine over the same store.
//
// Diagnostics never abort the parse: a violation records one finding,
// moves the machine into stateError, and the next newline resynchronizes
// it to stateNewLine.
type machine struct {
	store   map[string]*Section
	diags   *diag.List
	include func(path string)

	state        state
	line         int
	col          int
	ignoreSpaces bool
	escaped      bool

	// open is the section currently receiving content. It stays nil
	// after a duplicate section header, which silently orphans every
	// key, inheritance and attribute until the next '['.
	open     *Section
	openName string

	section     []byte
	inheritance []byte
	attribute   []byte
	key         []byte
	value       []byte
	directive   []byte
	includeArg  []byte
}

func newMachine(store map[string]*Section, diags *diag.List, include func(path string)) *machine {
	return &machine{
		store:        store,
		diags:        diags,
		include:      include,
		state:        stateNewLine,
		line:         1,
		ignoreSpaces: true,
	}
}

func (m *machine) run(data []byte) {
	for _, c := range data {
		m.step(c)
	}
}

// step processes one byte. The column counter advances once per byte,
// except for the byte consumed by an escape sequence, which mirrors the
// original stream handling.
func (m *machine) step(c byte) {
	if m.escaped {
		m.escaped = false
		m.unescape(c)

		return
	}

	switch c {
	case commentCharacter:
		switch m.state {
		case stateStringValue:
			m.value = append(m.value, c)
		default:
			m.state = stateComment
		}

	case commentMultiline:
		switch m.state {
		case stateStringValue:
			m.value = append(m.value, c)
		case stateMultilineComment:
			m.state = stateNewLine
		default:
			m.state = stateMultilineComment
		}

	case ' ', '\t':
		m.stepSpace(c)

	case '\\':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateStringValue:
			m.escaped = true
		default:
			m.state = stateError
			m.errorf("Unexpected escape-symbol")
		}

	case '"':
		switch m.state {
		case stateStringValue:
			m.state = stateValue
		case stateValue:
			m.state = stateStringValue
		default:
			// No meaning outside a value; dropped.
		}

	case '#':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateNewLine:
			m.state = statePreprocessor
		case stateStringValue:
			m.value = append(m.value, c)
		default:
			m.state = stateError
			m.errorf("Preprocessor parse error")
		}

	case '\n':
		m.stepNewline()

	case '<':
		if m.state == stateStringValue {
			m.value = append(m.value, c)
		}

	case '>':
		switch m.state {
		case stateStringValue:
			m.value = append(m.value, c)
		case stateInclude:
			m.include(string(m.includeArg))
			m.includeArg = m.includeArg[:0]
		default:
		}

	case '[':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateNewLine:
			m.ignoreSpaces = false
			m.state = stateSection
			m.section = m.section[:0]
			m.open = nil
			m.openName = ""
		case stateStringValue:
			m.value = append(m.value, c)
		default:
			m.state = stateError
			m.errorf("Section naming parse error")
		}

	case ']':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateSection:
			m.commitSection()
			m.ignoreSpaces = true
		case stateStringValue:
			m.value = append(m.value, c)
		default:
			m.state = stateError
			m.errorf("Section naming parse error")
		}

	case ',':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateInheritance:
			m.pushInheritance()
		case stateAttribute:
			m.pushAttribute()
		case stateStringValue, stateValueArray:
			m.value = append(m.value, c)
		case stateValue:
			m.state = stateValueArray
			m.value = append(m.value, c)
		default:
			m.state = stateError
			m.errorf("Enumeration error")
		}

	case ':':
		switch m.state {
		case stateComment, stateMultilineComment:
		case stateSection:
			m.state = stateInheritance
		case stateStringValue:
			m.value = append(m.value, c)
		default:
			m.state = stateError
			m.errorf("Inheritance error")
		}

	case '=':
		m.stepEquals(c)

	default:
		m.stepDefault(c)
	}

	m.col++
}

func (m *machine) stepSpace(c byte) {
	switch m.state {
	case stateStringValue:
		m.value = append(m.value, c)

	case statePreprocessor:
		if string(m.directive) == "include" {
			m.state = stateInclude
		}

		m.directive = m.directive[:0]

	case stateAttribute, stateInheritance, stateKey, stateSection, stateValue:
		if !m.ignoreSpaces {
			m.state = stateError
			m.errorf("Space in wrong place")
		}

	default:
	}
}

func (m *machine) stepEquals(c byte) {
	switch m.state {
	case stateComment, stateMultilineComment:

	case stateSection:
		m.state = stateAttribute

	case stateInheritance:
		m.pushInheritance()
		m.state = stateAttribute

	case stateKey:
		if m.open != nil {
			key := string(m.key)
			if _, exists := m.open.Values[key]; exists {
				m.errorf("Section \"%s\" key \"%s\" already exist.", m.openName, key)
			} else {
				m.open.Values[key] = ""
			}
		}

		m.state = stateValue

	case stateStringValue:
		m.value = append(m.value, c)

	default:
		m.state = stateError
		m.errorf("Set value error")
	}
}

func (m *machine) stepDefault(c byte) {
	switch m.state {
	case stateComment, stateMultilineComment:
	case stateNewLine:
		m.state = stateKey
		m.key = append(m.key, c)
	case statePreprocessor:
		m.directive = append(m.directive, c)
	case stateInclude:
		m.includeArg = append(m.includeArg, c)
	case stateSection:
		m.section = append(m.section, c)
	case stateInheritance:
		m.inheritance = append(m.inheritance, c)
	case stateAttribute:
		m.attribute = append(m.attribute, c)
	case stateKey:
		m.key = append(m.key, c)
	case stateValue, stateValueArray, stateStringValue:
		m.value = append(m.value, c)
	default:
		m.state = stateError
		m.errorf("Invalid character error")
	}
}

// stepNewline terminates the current statement. Inside a quoted string
// or a block comment the newline is content and only the line counter
// advances; everywhere else the machine resynchronizes to stateNewLine.
func (m *machine) stepNewline() {
	switch m.state {
	case stateComment, stateMultilineComment:

	case stateInheritance:
		m.pushInheritance()

	case statePreprocessor, stateInclude:

	case stateAttribute:
		m.pushAttribute()

	case stateValue, stateValueArray:
		if m.open != nil {
			m.open.Values[string(m.key)] = string(m.value)
		}

		m.key = m.key[:0]
		m.value = m.value[:0]

	case stateStringValue, stateNewLine:

	case stateSection:
		m.state = stateNewLine

	default:
		m.state = stateError
		m.errorf("New line parse error")
	}

	if m.state != stateStringValue && m.state != stateMultilineComment {
		m.state = stateNewLine
		m.col = 0
	}

	m.line++
	m.ignoreSpaces = true
}

// unescape maps the byte following a backslash inside a quoted string.
// An unrecognized sequence drops both bytes and records a finding.
func (m *machine) unescape(c byte) {
	switch c {
	case '\\':
		m.value = append(m.value, '\\')
	case 'n':
		m.value = append(m.value, '\n')
	case '"':
		m.value = append(m.value, '"')
	case '\'':
		m.value = append(m.value, '\'')
	default:
		m.errorf("Unknown escape-sequence symbol")
	}
}

// commitSection registers the accumulated section name in the store.
// A duplicate name leaves no section open, so everything until the next
// '[' is parsed and then discarded.
func (m *machine) commitSection() {
	name := string(m.section)

	if _, exists := m.store[name]; exists {
		m.errorf("Section \"%s\" already exist.", name)

		return
	}

	section := newSection()
	m.store[name] = section
	m.open = section
	m.openName = name
}

// pushInheritance flushes the pending inheritance name. The inherited
// section must already exist in the store; forward references are
// diagnosed and dropped, never deferred.
func (m *machine) pushInheritance() {
	if len(m.inheritance) == 0 {
		return
	}

	name := string(m.inheritance)
	m.inheritance = m.inheritance[:0]

	if m.open == nil {
		return
	}

	if _, exists := m.store[name]; exists {
		m.open.Inheritances = append(m.open.Inheritances, name)
	} else {
		m.errorf("Inherited section \"%s\" is not exist!", name)
	}
}

func (m *machine) pushAttribute() {
	if len(m.attribute) == 0 {
		return
	}

	name := string(m.attribute)
	m.attribute = m.attribute[:0]

	if m.open == nil {
		return
	}

	m.open.Attributes = append(m.open.Attributes, name)
}

func (m *machine) errorf(format string, args ...any) {
	m.diags.Add(diag.Record{
		Line:    m.line,
		Col:     m.col,
		Message: fmt.Sprintf(format, args...),
	})
}
