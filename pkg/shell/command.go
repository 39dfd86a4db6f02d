package shell

// ICommand is a single external program invocation.
type ICommand interface {
	Name() string
	Args() []string
	Env() []string
	String() string
}
