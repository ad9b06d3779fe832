package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/sator/internal/magic"
)

// SquareOptions configures the square workflow.
type SquareOptions struct {
	Order int

	// Method is a method name; empty picks the method for the order.
	Method string

	// Apply is a comma-separated list of transformations in token form,
	// e.g. "cw,outer1,rows1-2".
	Apply string
}

// SquareResult contains the built square.
type SquareResult struct {
	Square  *magic.Square
	Method  magic.Method
	Applied []magic.Transformation
}

// BuildSquare builds a magic square and applies the requested
// transformations in order.
//
// Returns ErrUnsupportedOrder or ErrInvalidIndex from the magic package.
func BuildSquare(ctx context.Context, opts SquareOptions) (*SquareResult, error) {
	var (
		method magic.Method
		err    error
	)
	if opts.Method == "" {
		method, err = magic.MethodFor(opts.Order)
	} else {
		method, err = magic.ParseMethod(opts.Method)
	}
	if err != nil {
		return nil, err
	}

	var applied []magic.Transformation
	for _, step := range strings.Split(opts.Apply, ",") {
		if strings.TrimSpace(step) == "" {
			continue
		}
		t, err := magic.ParseTransformation(step)
		if err != nil {
			return nil, err
		}
		applied = append(applied, t)
	}

	sq, err := magic.Build(opts.Order, method)
	if err != nil {
		return nil, err
	}
	if err := magic.ApplyAll(sq, applied); err != nil {
		return nil, err
	}

	return &SquareResult{Square: sq, Method: method, Applied: applied}, nil
}
