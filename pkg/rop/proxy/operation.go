package proxy

import (
	"fmt"
	"strings"
)

// Operation is one deferred step of a Chain. It is one of GetOp, CallOp or
// IndexOp.
type Operation interface {
	fmt.Stringer
	operation()
}

// GetOp reads a named property.
type GetOp struct {
	Name string
}

// CallOp invokes a named method with positional arguments.
type CallOp struct {
	Name string
	Args []any
}

// IndexOp reads an element by index or key.
type IndexOp struct {
	Key any
}

func (GetOp) operation()   {}
func (CallOp) operation()  {}
func (IndexOp) operation() {}

func (o GetOp) String() string {
	return "." + o.Name
}

func (o CallOp) String() string {
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = fmt.Sprintf("%#v", a)
	}
	return "." + o.Name + "(" + strings.Join(args, ", ") + ")"
}

func (o IndexOp) String() string {
	return fmt.Sprintf("[%#v]", o.Key)
}
