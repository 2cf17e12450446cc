package components

import (
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/classify"
)

// PropertyKind classifies a component member.
type PropertyKind int

const (
	Method PropertyKind = iota
	ArrowField
	FunctionField
	ValueField
)

func (k PropertyKind) String() string {
	switch k {
	case Method:
		return "method"
	case ArrowField:
		return "arrow-field"
	case FunctionField:
		return "function-field"
	default:
		return "value-field"
	}
}

// Property is one member of a class component body or a factory spec.
type Property struct {
	Name string
	// Node is the *ast.MethodDefinition, *ast.ClassProperty or *ast.Property.
	Node  ast.Node
	Value ast.Node
	Kind  PropertyKind
}

// IsFunction reports whether the member holds a function.
func (p Property) IsFunction() bool {
	return p.Kind != ValueField
}

// Descriptor is a detected component.
type Descriptor struct {
	// Node is the class, the factory call or the function.
	Node ast.Node
	Kind Kind
	// Name is the class name or the binding the component is assigned to,
	// empty when anonymous.
	Name string
	// Body is the *ast.ClassBody, the factory's *ast.ObjectExpression spec or
	// the function body.
	Body ast.Node

	properties []Property
}

// Properties returns the members collected for the component, in
// declaration order.
func (d *Descriptor) Properties() []Property {
	return slices.Clone(d.properties)
}

// State is the lifecycle state of a Registry.
type State int

const (
	Empty State = iota
	Populating
	Finalized
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Populating:
		return "populating"
	default:
		return "finalized"
	}
}

// Registry collects components during a single traversal of one file. It
// moves from Empty to Populating on the first detected component and to
// Finalized when Finalize is called; a finalized registry panics on any
// further mutation.
type Registry struct {
	detector *Detector
	state    State
	order    []*Descriptor
	byNode   map[ast.Node]*Descriptor
	byBody   map[ast.Node]*Descriptor
}

func NewRegistry(detector *Detector) *Registry {
	return &Registry{
		detector: detector,
		byNode:   make(map[ast.Node]*Descriptor),
		byBody:   make(map[ast.Node]*Descriptor),
	}
}

// State returns the current state.
func (r *Registry) State() State {
	return r.state
}

// Detector returns the detector used by the registry.
func (r *Registry) Detector() *Detector {
	return r.detector
}

// Observe is called for every node in traversal order. Declarations are
// registered when detected and members of registered bodies are appended to
// their component.
func (r *Registry) Observe(n ast.Node) {
	if r.state == Finalized {
		panic("components: Observe called on a finalized registry")
	}
	if ast.IsNil(n) {
		return
	}

	if kind := r.detector.Classify(n); kind != NotAComponent {
		r.register(n, kind)
		return
	}

	var owner *Descriptor
	switch n.(type) {
	case *ast.MethodDefinition, *ast.ClassProperty, *ast.Property:
		owner = r.byBody[n.Parent()]
	}
	if owner == nil {
		return
	}
	owner.properties = append(owner.properties, newProperty(n))
}

func (r *Registry) register(n ast.Node, kind Kind) {
	if _, ok := r.byNode[n]; ok {
		return
	}
	d := &Descriptor{Node: n, Kind: kind, Name: declaredName(n)}
	switch kind {
	case ClassComponent:
		if body := classify.ClassOf(n).Body; body != nil {
			d.Body = body
		}
	case FactoryComponent:
		d.Body = n.(*ast.CallExpression).Arguments[0]
	case FunctionComponent:
		d.Body = classify.FunctionOf(n).Body
	}
	r.byNode[n] = d
	if d.Body != nil && kind != FunctionComponent {
		r.byBody[d.Body] = d
	}
	r.order = append(r.order, d)
	r.state = Populating
}

// Enclosing returns the innermost component registered so far whose
// declaration contains n. Traversal is depth-first, so every enclosing
// declaration has been observed before n.
func (r *Registry) Enclosing(n ast.Node) *Descriptor {
	for cur := n; cur != nil; cur = cur.Parent() {
		if d, ok := r.byNode[cur]; ok {
			return d
		}
	}
	return nil
}

func newProperty(n ast.Node) Property {
	p := Property{Name: classify.GetPropertyName(n), Node: n}
	switch m := n.(type) {
	case *ast.MethodDefinition:
		p.Value = m.Value
		p.Kind = Method
		return p
	case *ast.ClassProperty:
		p.Value = m.Value
	case *ast.Property:
		p.Value = m.Value
		if m.Method {
			p.Kind = Method
			return p
		}
	}
	switch p.Value.(type) {
	case *ast.ArrowFunctionExpression:
		p.Kind = ArrowField
	case *ast.FunctionExpression:
		p.Kind = FunctionField
	default:
		p.Kind = ValueField
	}
	return p
}

// Finalize freezes the registry and returns the snapshot queried by
// exit-time rules.
func (r *Registry) Finalize() *Snapshot {
	if r.state == Finalized {
		panic("components: Finalize called twice")
	}
	r.state = Finalized
	s := &Snapshot{
		list:   make([]*Descriptor, 0, len(r.order)),
		byNode: make(map[ast.Node]*Descriptor, len(r.order)),
	}
	for _, d := range r.order {
		frozen := *d
		frozen.properties = slices.Clip(slices.Clone(d.properties))
		s.list = append(s.list, &frozen)
		s.byNode[frozen.Node] = &frozen
	}
	return s
}

// Snapshot is the immutable result of a finalized registry.
type Snapshot struct {
	list   []*Descriptor
	byNode map[ast.Node]*Descriptor
}

// List returns the components in declaration order.
func (s *Snapshot) List() []*Descriptor {
	if s == nil {
		return nil
	}
	return slices.Clone(s.list)
}

// Get returns the component declared by n, or nil.
func (s *Snapshot) Get(n ast.Node) *Descriptor {
	if s == nil {
		return nil
	}
	return s.byNode[n]
}

// Enclosing returns the innermost component whose declaration contains n,
// n itself included.
func (s *Snapshot) Enclosing(n ast.Node) *Descriptor {
	if s == nil {
		return nil
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if d, ok := s.byNode[cur]; ok {
			return d
		}
	}
	return nil
}

// Len returns the number of components.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}
