package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

var (
	Chk = assert.New(&panicker{})
	// Exp provides the same API as Chk, but the resulting panics can be caught by d.Try()
	Exp = assert.New(&recoverablePanicker{})
)

type panicker struct {
}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

type recoverablePanicker struct {
}

func (s recoverablePanicker) Errorf(format string, args ...interface{}) {
	panic(checkError{fmt.Sprintf(format, args...)})
}

type checkError struct {
	msg string
}

func (e checkError) Error() string {
	return e.msg
}

// PanicIfTrue panics with err when b is true.
func PanicIfTrue(b bool, err error) {
	if b {
		panic(err)
	}
}

// PanicIfError panics with err when it is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}
