package common

var IgnoreIdent = Identifier{Value: "_"}

type Identifier struct {
	Value string
}

func (i Identifier) String() string {
	return i.Value
}

// Prime appends a prime mark, used to rename a binder away from a
// colliding free variable.
func (i Identifier) Prime() Identifier {
	return Identifier{Value: i.Value + "'"}
}

func NewIdentifier(name string) Identifier {
	return Identifier{name}
}
