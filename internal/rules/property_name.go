package rules

// PropertyName is a candidate date property together with the node types
// (primary or mixin) that make the repository create it automatically.
type PropertyName struct {
	Name             string
	AutoCreatedTypes []string
}

var (
	PropertyCQCreated       = PropertyName{Name: "cq:created"}
	PropertyCQLastModified  = PropertyName{Name: "cq:lastModified"}
	PropertyJCRLastModified = PropertyName{Name: "jcr:lastModified", AutoCreatedTypes: []string{"nt:resource", "oak:Resource", "mix:lastModified"}}
	PropertyJCRCreated      = PropertyName{Name: "jcr:created", AutoCreatedTypes: []string{"cq:PageContent", "mix:created"}}
)

// isAutoCreatedOn reports whether any of the given types auto-creates the property.
func (p PropertyName) isAutoCreatedOn(types []string) bool {
	for _, auto := range p.AutoCreatedTypes {
		for _, t := range types {
			if t == auto {
				return true
			}
		}
	}
	return false
}
