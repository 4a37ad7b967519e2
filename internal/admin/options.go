package admin

import "github.com/bornholm/jis/internal/media"

// MediaURLs resolves the public URL of a stored media object.
type MediaURLs interface {
	URL(key string) string
}

type Options struct {
	Media     media.Storage
	MediaURLs MediaURLs
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithMedia enables image uploads on the portfolio form. Uploaded images
// are referenced by the URL urls resolves for them.
func WithMedia(storage media.Storage, urls MediaURLs) OptionFunc {
	return func(opts *Options) {
		opts.Media = storage
		opts.MediaURLs = urls
	}
}
