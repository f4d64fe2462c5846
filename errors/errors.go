package errors

// Error is a string error that can be declared as a constant.
type Error string

func (e Error) Error() string { return string(e) }
