package d

// Try runs f, recovering any panic whose value is an error and returning it.
// Panics carrying non-error values propagate unchanged.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return
}

// TryCatch runs f and routes a recovered error panic through catch, returning
// its result. Non-error panics propagate unchanged.
func TryCatch(f func(), catch func(err error) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = catch(e)
		}
	}()
	f()
	return
}
