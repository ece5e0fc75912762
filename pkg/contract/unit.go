package contract

// Unit is a type with exactly one value and no data.
type Unit struct{}

var _ Contract[Unit] = Unit{}

const unitName = "()"

// Assoc returns the only Unit value; the associated type of Unit is Unit.
func (Unit) Assoc() Unit {
	return Unit{}
}

// C has no value yet. Calling it panics with an *UnimplementedError.
func (Unit) C() uint32 {
	panic(&UnimplementedError{Type: unitName, Member: "C"})
}

// Test has no implementation yet. Calling it panics with an
// *UnimplementedError.
func (Unit) Test() uint32 {
	panic(&UnimplementedError{Type: unitName, Member: "test"})
}
