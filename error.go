package argparse

import (
	"fmt"
	"strings"
)

// MissingArgumentsError is returned by a parse pass when one or more required
// arguments were absent from the input. Names holds the registered names of
// every missing argument, in lexical order.
type MissingArgumentsError struct {
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("required argument(s) %q not set", strings.Join(e.Names, ", "))
}
