package interpreter

import (
	"fmt"
	"io"

	"monkey/interpreter-go/pkg/runtime"
)

// Puts returns the puts builtin, which writes the display string of each
// argument on its own line to w and evaluates to null.
func Puts(w io.Writer) *runtime.NativeFunctionValue {
	return &runtime.NativeFunctionValue{
		Name:  "puts",
		Arity: -1,
		Impl: func(args []runtime.Value) (runtime.Value, error) {
			for _, arg := range args {
				if _, err := fmt.Fprintln(w, arg.String()); err != nil {
					return nil, err
				}
			}
			return runtime.Null, nil
		},
	}
}
