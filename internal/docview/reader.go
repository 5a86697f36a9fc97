package docview

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Element is a parsed DocView element: a node and its child elements in
// document order.
type Element struct {
	Node     *Node
	Children []*Element
}

// Parse reads a DocView document. The jcr:root element becomes a node named
// rootName (the name of the node the file serializes).
//
// Returns:
//   - ErrNotDocView (wrapped) if the document element is not jcr:root
//   - a *SyntaxError matching ErrInvalidDocView for XML syntax errors, unbalanced elements
//     or malformed property values
func Parse(r io.Reader, rootName string) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	var names []xml.Name

	for {
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(decoder, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := qualifiedName(t.Name)
			if root == nil {
				if name != replmeta.JCRRootName {
					return nil, fmt.Errorf("%w: document element is <%s>", replmeta.ErrNotDocView, name)
				}
				name = rootName
			} else if len(stack) == 0 {
				return nil, syntaxError(decoder, "multiple document elements")
			} else {
				name = DecodeName(name)
			}

			node, err := nodeFromAttributes(name, t.Attr)
			if err != nil {
				return nil, syntaxError(decoder, err.Error())
			}
			elem := &Element{Node: node}
			if root == nil {
				root = elem
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			}
			stack = append(stack, elem)
			names = append(names, t.Name)

		case xml.EndElement:
			if len(names) == 0 || names[len(names)-1] != t.Name {
				return nil, syntaxError(decoder, "unexpected </"+qualifiedName(t.Name)+">")
			}
			stack = stack[:len(stack)-1]
			names = names[:len(names)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: empty document", replmeta.ErrNotDocView)
	}
	if len(stack) > 0 {
		return nil, syntaxError(decoder, "unexpected end of document inside <"+qualifiedName(names[len(names)-1])+">")
	}
	return root, nil
}

func nodeFromAttributes(name string, attrs []xml.Attr) (*Node, error) {
	node := NewNode(name)
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		propName := qualifiedName(a.Name)
		v, err := ParseValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s of node %s: %v", propName, name, err)
		}
		node.Set(propName, v)
	}
	return node, nil
}

// qualifiedName renders a raw (unresolved) XML name as prefix:local.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// SyntaxError is a malformed DocView document. It matches ErrInvalidDocView
// with errors.Is.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: line %d: %s", replmeta.ErrInvalidDocView, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return replmeta.ErrInvalidDocView
}

// syntaxError reports msg at the decoder's current input position.
func syntaxError(decoder *xml.Decoder, msg string) *SyntaxError {
	line, column := decoder.InputPos()
	return &SyntaxError{Line: line, Column: column, Msg: msg}
}

func wrapXMLError(decoder *xml.Decoder, err error) error {
	var xmlErr *xml.SyntaxError
	if errors.As(err, &xmlErr) {
		return &SyntaxError{Line: xmlErr.Line, Msg: xmlErr.Msg}
	}
	return syntaxError(decoder, err.Error())
}

// Walk replays the element tree rooted at path to the validator in document
// order: Enter before the children, Exit after them. Diagnostics of all calls
// are returned in emission order.
func Walk(root *Element, path string, v replmeta.NodeValidator) []replmeta.Diagnostic {
	var diagnostics []replmeta.Diagnostic
	var visit func(e *Element, p string)
	visit = func(e *Element, p string) {
		diagnostics = append(diagnostics, v.Enter(p, e.Node)...)
		for _, child := range e.Children {
			visit(child, ChildPath(p, child.Node.Name()))
		}
		diagnostics = append(diagnostics, v.Exit(p, e.Node)...)
	}
	visit(root, path)
	return diagnostics
}
