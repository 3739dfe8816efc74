package clause

// Interface clause interface
type Interface interface {
	Name() string
	Build(Builder)
}

// Writer write sql text
type Writer interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

// Builder builder interface
type Builder interface {
	Writer
	// AddVar writes operands as their sql text with their params, any other value as a ? marker
	AddVar(Writer, ...interface{})
}
