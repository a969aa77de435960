package runner

//go:generate go tool stringer -type=Status -linecomment -output=status_string.go

// Status is the outcome of one part.
type Status int

const (
	StatusSolved  Status = iota // solved
	StatusCorrect               // correct
	StatusWrong                 // wrong
	StatusFailed                // failed
)

// Bad reports whether the status should fail a check.
func (s Status) Bad() bool {
	return s == StatusWrong || s == StatusFailed
}
