package try

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fext/pkg/fext"
)

// Fault describes something raised by a computation run under Try.
type Fault struct {
	ID         uuid.UUID
	CapturedAt time.Time
	// Type is the Go type of the raised value, e.g. "*fs.PathError".
	Type    string
	Message string
	Causes  []Fault
	Stack   string

	err error
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Type, f.Message)
}

// Unwrap returns the original error when the raised value was an error.
func (f Fault) Unwrap() error {
	return f.err
}

func newFault(raised any, opts captureOptions) Fault {
	f := describe(raised, opts.causeDepth)
	f.ID = uuid.New()
	f.CapturedAt = time.Now().UTC()
	if opts.stack {
		f.Stack = string(debug.Stack())
	}
	return f
}

func describe(raised any, depth int) Fault {
	f := Fault{Type: fmt.Sprintf("%T", raised)}

	err, isErr := raised.(error)
	if !isErr {
		f.Message = fmt.Sprint(raised)
		return f
	}

	f.err = err
	f.Message = err.Error()
	if depth > 0 {
		for _, cause := range fext.Causes(err) {
			f.Causes = append(f.Causes, describe(cause, depth-1))
		}
	}
	return f
}
