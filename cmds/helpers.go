package cmds

// Var defines name <value> setting the returned variable, and name. resetting
// it to zero.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name turning the returned flag on, and !name turning it off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name <value> appending to the returned slice.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
