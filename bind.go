package sigs

// Bind creates a slot from a method expression and the receiver it should be called on.
//
//	sig.Connect(sigs.Bind(counter, (*Counter).Add))
//
// When a type has several methods that could fit, the type arguments can be given explicitly to pick the intended signature.
func Bind[T, A any](recv T, method func(T, A)) func(A) {
	return func(args A) {
		method(recv, args)
	}
}

// BindReturn is the same as [Bind] for slots of a [ReturnSignal].
func BindReturn[T, A, R any](recv T, method func(T, A) R) func(A) R {
	return func(args A) R {
		return method(recv, args)
	}
}
