package docview

import (
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

const (
	PropertyPrimaryType = "jcr:primaryType"
	PropertyMixinTypes  = "jcr:mixinTypes"
)

// Property is a named property value as found on a DocView element.
type Property struct {
	Name  string
	Value replmeta.PropertyValue
}

// ParseProperty builds a Property from a qualified name and a raw DocView value.
func ParseProperty(name, raw string) (Property, error) {
	v, err := ParseValue(raw)
	if err != nil {
		return Property{}, err
	}
	return Property{Name: name, Value: v}, nil
}

// Node is an in-memory repository node. It implements replmeta.NodeView.
type Node struct {
	name       string
	properties map[string]replmeta.PropertyValue
	order      []string
}

// NewNode creates a node with the given properties. Later properties with the
// same name replace earlier ones.
func NewNode(name string, props ...Property) *Node {
	n := &Node{
		name:       name,
		properties: make(map[string]replmeta.PropertyValue, len(props)),
	}
	for _, p := range props {
		n.Set(p.Name, p.Value)
	}
	return n
}

// Set assigns a property value.
func (n *Node) Set(name string, value replmeta.PropertyValue) {
	if _, exists := n.properties[name]; !exists {
		n.order = append(n.order, name)
	}
	n.properties[name] = value
}

func (n *Node) Name() string { return n.name }

func (n *Node) PrimaryType() (string, bool) {
	v, ok := n.properties[PropertyPrimaryType]
	if !ok {
		return "", false
	}
	return v.First()
}

func (n *Node) MixinTypes() []string {
	v, ok := n.properties[PropertyMixinTypes]
	if !ok {
		return nil
	}
	return v.Values
}

func (n *Node) Property(name string) (replmeta.PropertyValue, bool) {
	v, ok := n.properties[name]
	return v, ok
}

// PropertyNames returns the property names in declaration order.
func (n *Node) PropertyNames() []string {
	names := make([]string, len(n.order))
	copy(names, n.order)
	return names
}

var _ replmeta.NodeView = (*Node)(nil)
