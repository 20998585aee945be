package optargs

// Result is the terminal outcome of a Parse call. Anything other than
// Success or HelpRequested means no argument value should be trusted.
type Result uint8

const (
	Success Result = iota
	UnknownOption
	MissingValue
	InvalidValue
	// Not an error. A help token short-circuits before any validation.
	HelpRequested
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	case HelpRequested:
		return "help requested"
	}
	return "unknown result"
}

type parseError struct {
	result Result
	msg    string
}

func (e parseError) Error() string {
	return e.msg
}

func (e parseError) Result() Result {
	return e.result
}
