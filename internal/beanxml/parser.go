package beanxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse decodes raw bean XML text into a Document.
func Parse(raw string) (*Document, error) {
	return Decode(strings.NewReader(raw))
}

// Decode reads a bean XML document from r. Any input that is not
// well-formed, or that does not have the java/object/void shape, fails
// with a *ParseError.
func Decode(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	p := &decoder{d: d}
	root, err := p.root()
	if err != nil {
		return nil, err
	}
	doc, err := p.document(root)
	if err != nil {
		return nil, err
	}
	if err := p.trailer(); err != nil {
		return nil, err
	}
	return doc, nil
}

type decoder struct {
	d    *xml.Decoder
	path []string
}

func (p *decoder) push(name string, n int) {
	if n > 0 {
		name = fmt.Sprintf("%s[%d]", name, n)
	}
	p.path = append(p.path, name)
}

func (p *decoder) pop() {
	p.path = p.path[:len(p.path)-1]
}

func (p *decoder) fail(sentinel error, format string, args ...any) error {
	line, col := p.d.InputPos()
	return &ParseError{
		Line:   line,
		Column: col,
		Path:   strings.Join(p.path, "/"),
		Err:    fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}

func (p *decoder) malformed(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	line, col := p.d.InputPos()
	return &ParseError{
		Line:   line,
		Column: col,
		Path:   strings.Join(p.path, "/"),
		Err:    fmt.Errorf("%w: %w", ErrMalformed, err),
	}
}

func (p *decoder) unexpected(se xml.StartElement) error {
	return p.fail(ErrUnexpectedElement, "<%s>", se.Name.Local)
}

// next returns the next start element, end element or non-blank text,
// skipping comments, processing instructions and directives.
func (p *decoder) next() (xml.Token, error) {
	for {
		tok, err := p.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return t.Copy(), nil
			}
		}
	}
}

// children calls fn for every child element of the current element and
// returns once its end tag is consumed. fn must consume the child through
// its own end tag.
func (p *decoder) children(fn func(se xml.StartElement) error) error {
	for {
		tok, err := p.next()
		if err != nil {
			return p.malformed(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			return p.fail(ErrUnexpectedText, "%q", strings.TrimSpace(string(t)))
		}
	}
}

// text returns the character data of a scalar element, verbatim.
func (p *decoder) text() (string, error) {
	var b strings.Builder
	for {
		tok, err := p.d.Token()
		if err != nil {
			return "", p.malformed(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			return "", p.unexpected(t)
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

func (p *decoder) integer(name string, bits int) (int64, error) {
	p.push(name, 0)
	defer p.pop()

	s, err := p.text()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return 0, p.fail(ErrInvalidValue, "%q is not a %d-bit integer", s, bits)
	}
	return n, nil
}

func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (p *decoder) requireAttr(se xml.StartElement, name string) (string, error) {
	v, ok := attr(se, name)
	if !ok {
		return "", p.fail(ErrMissingAttribute, "<%s> needs %q", se.Name.Local, name)
	}
	return v, nil
}

func optionalAttr(se xml.StartElement, name string) *string {
	v, ok := attr(se, name)
	if !ok {
		return nil
	}
	return &v
}

func (p *decoder) root() (xml.StartElement, error) {
	tok, err := p.next()
	if errors.Is(err, io.EOF) {
		return xml.StartElement{}, p.fail(ErrEmptyDocument, "no root element")
	}
	if err != nil {
		return xml.StartElement{}, p.malformed(err)
	}
	switch t := tok.(type) {
	case xml.StartElement:
		if t.Name.Local != "java" {
			return xml.StartElement{}, p.fail(ErrUnexpectedElement, "<%s>, want <java>", t.Name.Local)
		}
		return t, nil
	case xml.CharData:
		return xml.StartElement{}, p.fail(ErrUnexpectedText, "%q before root element", strings.TrimSpace(string(t)))
	default:
		return xml.StartElement{}, p.fail(ErrMalformed, "unexpected %T before root element", t)
	}
}

// trailer rejects anything but comments and whitespace after </java>.
func (p *decoder) trailer() error {
	tok, err := p.next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return p.malformed(err)
	}
	switch t := tok.(type) {
	case xml.StartElement:
		return p.fail(ErrUnexpectedElement, "<%s> after root element", t.Name.Local)
	case xml.CharData:
		return p.fail(ErrUnexpectedText, "%q after root element", strings.TrimSpace(string(t)))
	default:
		return p.fail(ErrMalformed, "unexpected %T after root element", t)
	}
}

func (p *decoder) document(se xml.StartElement) (*Document, error) {
	p.push("java", 0)
	defer p.pop()

	version, err := p.requireAttr(se, "version")
	if err != nil {
		return nil, err
	}
	class, err := p.requireAttr(se, "class")
	if err != nil {
		return nil, err
	}

	doc := &Document{Version: version, Class: class}
	err = p.children(func(child xml.StartElement) error {
		if child.Name.Local != "object" {
			return p.unexpected(child)
		}
		obj, err := p.object(child, len(doc.Objects)+1)
		if err != nil {
			return err
		}
		doc.Objects = append(doc.Objects, obj)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (p *decoder) object(se xml.StartElement, n int) (Object, error) {
	p.push("object", n)
	defer p.pop()

	class, err := p.requireAttr(se, "class")
	if err != nil {
		return Object{}, err
	}

	obj := Object{Class: class}
	err = p.children(func(child xml.StartElement) error {
		if child.Name.Local != "void" {
			return p.unexpected(child)
		}
		prop, err := p.property(child, len(obj.Properties)+1)
		if err != nil {
			return err
		}
		obj.Properties = append(obj.Properties, prop)
		return nil
	})
	if err != nil {
		return Object{}, err
	}
	return obj, nil
}

func (p *decoder) property(se xml.StartElement, n int) (Property, error) {
	p.push("void", n)
	defer p.pop()

	name, err := p.requireAttr(se, "property")
	if err != nil {
		return Property{}, err
	}

	prop := Property{Name: name}
	err = p.children(func(child xml.StartElement) error {
		if prop.Value != nil {
			return p.fail(ErrMultipleValues, "<%s> after %s value", child.Name.Local, prop.Value.Kind())
		}
		v, err := p.value(child)
		if err != nil {
			return err
		}
		prop.Value = v
		return nil
	})
	if err != nil {
		return Property{}, err
	}
	return prop, nil
}

func (p *decoder) value(se xml.StartElement) (Value, error) {
	switch se.Name.Local {
	case "string":
		s, err := p.text()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case "int":
		n, err := p.integer("int", 32)
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case "byte":
		n, err := p.integer("byte", 8)
		if err != nil {
			return nil, err
		}
		return Byte(n), nil
	case "long":
		n, err := p.integer("long", 32)
		if err != nil {
			return nil, err
		}
		return Long(n), nil
	case "object":
		return p.date(se)
	case "array":
		return p.array(se)
	default:
		return nil, p.unexpected(se)
	}
}

func (p *decoder) date(se xml.StartElement) (*Date, error) {
	p.push("object", 0)
	defer p.pop()

	d := &Date{Class: optionalAttr(se, "class")}
	err := p.children(func(child xml.StartElement) error {
		if child.Name.Local != "long" {
			return p.unexpected(child)
		}
		if d.Millis != nil {
			return p.fail(ErrMultipleValues, "second <long>")
		}
		ms, err := p.integer("long", 64)
		if err != nil {
			return err
		}
		d.Millis = &ms
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (p *decoder) array(se xml.StartElement) (*Array, error) {
	p.push("array", 0)
	defer p.pop()

	arr := &Array{Class: optionalAttr(se, "class")}
	if raw, ok := attr(se, "length"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return nil, p.fail(ErrInvalidValue, "length %q", raw)
		}
		length := int32(n)
		arr.Length = &length
	}

	err := p.children(func(child xml.StartElement) error {
		if child.Name.Local != "void" {
			return p.unexpected(child)
		}
		elem, err := p.indexedByte(child, len(arr.Elements)+1)
		if err != nil {
			return err
		}
		arr.Elements = append(arr.Elements, elem)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *decoder) indexedByte(se xml.StartElement, n int) (IndexedByte, error) {
	p.push("void", n)
	defer p.pop()

	index, err := p.requireAttr(se, "index")
	if err != nil {
		return IndexedByte{}, err
	}

	var value *int8
	err = p.children(func(child xml.StartElement) error {
		if child.Name.Local != "byte" {
			return p.unexpected(child)
		}
		if value != nil {
			return p.fail(ErrMultipleValues, "second <byte>")
		}
		b, err := p.integer("byte", 8)
		if err != nil {
			return err
		}
		v := int8(b)
		value = &v
		return nil
	})
	if err != nil {
		return IndexedByte{}, err
	}
	if value == nil {
		return IndexedByte{}, p.fail(ErrMissingValue, "index %q has no <byte>", index)
	}
	return IndexedByte{Index: index, Value: *value}, nil
}
