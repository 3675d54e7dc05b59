package procs

// Proc is one step of a resumable process. Run returns the next step,
// or nil when the process is done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}
