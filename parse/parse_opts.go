package parse

// DefaultMaxDepth bounds nesting so hostile input cannot blow the stack.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
}

// Option configures a call to Parse.
type Option func(*parseOpts)

// MaxDepth overrides the nesting limit.
func MaxDepth(n int) Option {
	return func(o *parseOpts) {
		o.maxDepth = n
	}
}
