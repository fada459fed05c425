package ir

import "sort"

// Node is one value of a document tree. Scalars keep their original textual
// form in Value until a typed accessor is invoked, so parsing loses no
// precision. Exactly one of Elems (ArrayType) and Props (ObjectType) is
// active per type; the other stays empty.
type Node struct {
	Type  Type
	Value string
	// Line is the 1-based source line of the opening token or literal;
	// 0 means the node was built programmatically.
	Line  int
	Elems []*Node
	Props *OrderedMap
}

func New(t Type) *Node {
	n := &Node{}
	n.SetType(t)
	return n
}

func Null() *Node {
	return &Node{Type: NullType, Value: "null"}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Value: v}
}

func FromBool(v bool) *Node {
	if v {
		return &Node{Type: BoolType, Value: "true"}
	}
	return &Node{Type: BoolType, Value: "false"}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Value: formatInt(v)}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Value: formatFloat(v)}
}

// FromNumber builds a number node from raw textual form, kept verbatim.
func FromNumber(raw string) *Node {
	return &Node{Type: NumberType, Value: raw}
}

func (n *Node) IsString() bool { return n.Type == StringType }
func (n *Node) IsNumber() bool { return n.Type == NumberType }
func (n *Node) IsBool() bool   { return n.Type == BoolType }
func (n *Node) IsNull() bool   { return n.Type == NullType }
func (n *Node) IsObject() bool { return n.Type == ObjectType }
func (n *Node) IsArray() bool  { return n.Type == ArrayType }

// SetType retags the node. Containers that do not match the new type are
// dropped; the matching one is initialized empty if absent.
func (n *Node) SetType(t Type) *Node {
	n.Type = t
	switch t {
	case ObjectType:
		n.Value = ""
		n.Elems = nil
		if n.Props == nil {
			n.Props = NewOrderedMap()
		}
	case ArrayType:
		n.Value = ""
		n.Props = nil
		if n.Elems == nil {
			n.Elems = []*Node{}
		}
	default:
		n.Elems = nil
		n.Props = nil
	}
	return n
}

// SetValue replaces the raw scalar payload. Value and children are mutually
// exclusive: setting a value on an Object or Array is an invalid mutation.
func (n *Node) SetValue(v string) error {
	if n.Type == ObjectType || n.Type == ArrayType {
		return &MutationError{Line: n.Line, Op: "set the value of", Type: n.Type}
	}
	n.Value = v
	return nil
}

func (n *Node) SetLine(line int) *Node {
	n.Line = line
	return n
}

// Size returns the child count: array length, object entry count, 0 for
// scalars.
func (n *Node) Size() int {
	switch n.Type {
	case ArrayType:
		return len(n.Elems)
	case ObjectType:
		return n.Props.Len()
	default:
		return 0
	}
}

func (n *Node) Has(key string) bool {
	return n.Type == ObjectType && n.Props.Find(key) != nil
}

// AddProperty stores child under key, appending when the key is new and
// replacing in place otherwise. A nil child stores a fresh Null node. The
// stored node is returned.
func (n *Node) AddProperty(key string, child *Node) (*Node, error) {
	if n.Type != ObjectType {
		return nil, &MutationError{Line: n.Line, Op: "add a property to", Type: n.Type}
	}
	if child == nil {
		child = Null()
	}
	return n.Props.Set(key, child).Node, nil
}

// RemoveProperty removes key; removing an absent key is a no-op.
func (n *Node) RemoveProperty(key string) error {
	if n.Type != ObjectType {
		return &MutationError{Line: n.Line, Op: "remove a property from", Type: n.Type}
	}
	n.Props.Erase(key)
	return nil
}

// AddElement appends child to the array; nil appends a fresh Null node.
func (n *Node) AddElement(child *Node) (*Node, error) {
	if n.Type != ArrayType {
		return nil, &MutationError{Line: n.Line, Op: "add an element to", Type: n.Type}
	}
	if child == nil {
		child = Null()
	}
	n.Elems = append(n.Elems, child)
	return child, nil
}

func (n *Node) RemoveElement(i int) error {
	if n.Type != ArrayType {
		return &MutationError{Line: n.Line, Op: "remove an element from", Type: n.Type}
	}
	if i < 0 || i >= len(n.Elems) {
		return &RangeError{Line: n.Line, Index: i, Size: len(n.Elems)}
	}
	n.Elems = append(n.Elems[:i], n.Elems[i+1:]...)
	return nil
}

func (n *Node) Reserve(size int) error {
	if n.Type != ArrayType {
		return &MutationError{Line: n.Line, Op: "reserve space in", Type: n.Type}
	}
	if cap(n.Elems) < size {
		elems := make([]*Node, len(n.Elems), size)
		copy(elems, n.Elems)
		n.Elems = elems
	}
	return nil
}

// Resize grows the array with Null nodes or truncates it.
func (n *Node) Resize(size int) error {
	if n.Type != ArrayType {
		return &MutationError{Line: n.Line, Op: "resize", Type: n.Type}
	}
	if size <= len(n.Elems) {
		n.Elems = n.Elems[:size]
		return nil
	}
	for len(n.Elems) < size {
		n.Elems = append(n.Elems, Null())
	}
	return nil
}

// Clear poisons the node: it drops value and children and tags the node
// UninitType, so it must be retyped before further structural use.
func (n *Node) Clear() {
	n.Type = UninitType
	n.Value = ""
	n.Elems = nil
	n.Props = nil
}

// At is positional access: the i-th array element, or the i-th object entry
// in insertion order.
func (n *Node) At(i int) (*Node, error) {
	switch n.Type {
	case ArrayType:
		if i < 0 || i >= len(n.Elems) {
			return nil, &RangeError{Line: n.Line, Index: i, Size: len(n.Elems)}
		}
		return n.Elems[i], nil
	case ObjectType:
		if i < 0 || i >= n.Props.Len() {
			return nil, &RangeError{Line: n.Line, Index: i, Size: n.Props.Len()}
		}
		return n.Props.At(i).Node, nil
	default:
		return nil, NewStructError(n.Line, "indexed access on a %s node", n.Type)
	}
}

// Field is keyed access, valid only on objects. A missing key auto-vivifies
// a Null property, or fails with a MissingPropertyError under
// Config.StrictKeys.
func (n *Node) Field(key string, cfg *Config) (*Node, error) {
	if n.Type != ObjectType {
		return nil, NewStructError(n.Line, "property access %q on a %s node", key, n.Type)
	}
	if e := n.Props.Find(key); e != nil {
		return e.Node, nil
	}
	if cfg.OrDefault().StrictKeys {
		return nil, &MissingPropertyError{Line: n.Line, Key: key}
	}
	return n.AddProperty(key, nil)
}

// Get is lookup without vivification; nil when absent or not an object.
func (n *Node) Get(key string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	if e := n.Props.Find(key); e != nil {
		return e.Node
	}
	return nil
}

// Sort permutes array elements or object entries in place with the
// caller-supplied comparator over nodes.
func (n *Node) Sort(less func(a, b *Node) bool) error {
	switch n.Type {
	case ArrayType:
		sort.SliceStable(n.Elems, func(i, j int) bool {
			return less(n.Elems[i], n.Elems[j])
		})
		return nil
	case ObjectType:
		n.Props.Sort(func(a, b *OrderedEntry) bool {
			return less(a.Node, b.Node)
		})
		return nil
	default:
		return &MutationError{Line: n.Line, Op: "sort", Type: n.Type}
	}
}

// Clone deep-copies the whole subtree; trees never share nodes.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:  n.Type,
		Value: n.Value,
		Line:  n.Line,
	}
	if n.Elems != nil {
		res.Elems = make([]*Node, len(n.Elems))
		for i, e := range n.Elems {
			res.Elems[i] = e.Clone()
		}
	}
	res.Props = n.Props.Clone()
	return res
}

// Visit walks the subtree pre- and post-order. Returning dive=false skips
// the children of the current node.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, e := range n.Elems {
			if err := e.Visit(f); err != nil {
				return err
			}
		}
		for _, entry := range n.Props.Entries() {
			if err := entry.Node.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}
