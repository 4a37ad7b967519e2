package store

type Options struct {
	PasswordCost int
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		PasswordCost: 12,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithPasswordCost sets the bcrypt cost used to hash local account passwords.
func WithPasswordCost(cost int) OptionFunc {
	return func(opts *Options) {
		opts.PasswordCost = cost
	}
}
