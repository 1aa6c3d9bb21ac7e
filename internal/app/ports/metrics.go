package ports

// CommandMetrics counts engine command outcomes per command name
// (start, action, advance, acknowledge).
type CommandMetrics interface {
	RecordSuccess(command string)
	RecordRejection(command string)
	RecordFailure(command string)
}
