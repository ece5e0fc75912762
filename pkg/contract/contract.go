// Package contract declares a capability contract with three members: an
// associated type, an associated constant and a required operation.
//
// Go interfaces cannot carry type members or constants, so the associated
// type is a type parameter of the contract and the associated constant is a
// zero-argument method. A conforming type picks T by declaring which
// instantiation it satisfies:
//
//	var _ Contract[Unit] = Unit{}
package contract

// Contract is the shape every conforming type must provide.
type Contract[T any] interface {
	// Assoc returns a value of the associated type T.
	Assoc() T

	// C returns the associated constant.
	C() uint32

	// Test is the required operation.
	Test() uint32
}

// Assoc returns the associated value of K. It only compiles for types that
// satisfy Contract[T].
func Assoc[T any, K Contract[T]]() T {
	var k K
	return k.Assoc()
}

// Value evaluates the associated constant of K.
func Value[T any, K Contract[T]]() uint32 {
	var k K
	return k.C()
}

// Run invokes the required operation of K.
func Run[T any, K Contract[T]]() uint32 {
	var k K
	return k.Test()
}
