/*
Package mapper provides a [Mapper] that manages signals of different types by name.

This is useful for types that emit many events, since each one doesn't need its own field and accessor.
Signals are created with [Add] or [AddReturn], or an existing signal is registered with [AddSignal].

Go methods can't have type parameters, so typed access to a signal is through functions like [Signal] and [Interface].
These return nil if the key is unknown, or if the signal stored under it has a different type.

	m := mapper.New()
	mapper.Add[string](m, "saved")
	mapper.Interface[string](m, "saved").Connect(func(name string) {
		fmt.Println("saved", name)
	})
	if err := mapper.Invoke(m, "saved", "doc.txt"); err != nil {
		// Handle ErrUnknownSignal or ErrSignalType
	}
*/
package mapper
