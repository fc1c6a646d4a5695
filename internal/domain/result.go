package domain

// Status names the variant of a Result.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the tri-state envelope emitted by the movie streams. The only
// implementations are Loading, Success and Failure; consumers switch on the
// concrete type.
type Result[T any] interface {
	Status() Status
	isResult()
}

// Loading signals that the operation is still in flight.
type Loading[T any] struct{}

// Success carries the final payload of an operation.
type Success[T any] struct {
	Data T
}

// Failure is the error variant. Data is an optional best-effort payload and
// Err keeps the underlying cause for errors.Is / errors.As.
type Failure[T any] struct {
	Message string
	Data    *T
	Err     error
}

func (Loading[T]) Status() Status { return StatusLoading }
func (Success[T]) Status() Status { return StatusSuccess }
func (Failure[T]) Status() Status { return StatusError }

func (Loading[T]) isResult() {}
func (Success[T]) isResult() {}
func (Failure[T]) isResult() {}

// Error implements the error interface so a Failure can be returned as-is.
func (f Failure[T]) Error() string {
	return f.Message
}

// Unwrap exposes the underlying cause.
func (f Failure[T]) Unwrap() error {
	return f.Err
}

// Drain reads every emission from ch until it is closed and returns them in
// order.
func Drain[T any](ch <-chan Result[T]) []Result[T] {
	var out []Result[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}
