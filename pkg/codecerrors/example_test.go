package codecerrors_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
)

// Example demonstrates creating a TypeMismatch with column diagnostics.
func Example() {
	err := codecerrors.New(codecerrors.KindTypeMismatch, "wire type LONGLONG requires an integer engine column").
		WithColumn("user_id").
		WithEngineType("Bytes")

	fmt.Println(err.Error())

	// Output:
	// type_mismatch: wire type LONGLONG requires an integer engine column (column=user_id) (engine_type=Bytes)
}

// ExampleWrap shows wrapping an underlying error as a LogicalError.
func ExampleWrap() {
	err := codecerrors.Wrap(io.ErrUnexpectedEOF, codecerrors.KindLogicalError, "decimal width probe exhausted all widths").
		WithColumn("price")

	if codecerrors.Is(err, codecerrors.KindLogicalError) {
		fmt.Println("logical error")
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		fmt.Println("cause preserved")
	}

	// Output:
	// logical error
	// cause preserved
}
