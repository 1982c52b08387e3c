package goal

// CompletedFlag is the literal stored in the Completed column.
type CompletedFlag string

const (
	CompletedTrue  CompletedFlag = "True"
	CompletedFalse CompletedFlag = "False"
)

// Toggle flips True to False and anything else to True.
func (c CompletedFlag) Toggle() CompletedFlag {
	if c == CompletedTrue {
		return CompletedFalse
	}
	return CompletedTrue
}

func (c CompletedFlag) Bool() bool { return c == CompletedTrue }
