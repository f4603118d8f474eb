package mailwalk

// Option configures a Walker. Options are plain values so callers can build
// them once and share them:
//
//	lists := mailwalk.Group(mailwalk.WithKey("contact"), mailwalk.WithStringLists())
//	emails := mailwalk.Extract(doc, lists)
type Option func(w *Walker)

// WithKey changes the key whose values are collected. Matching stays
// case-insensitive. An empty name is ignored.
func WithKey(name string) Option {
	return func(w *Walker) {
		if name != "" {
			w.key = name
		}
	}
}

// WithStringLists makes a matched key holding an array contribute the strings
// directly inside that array, in order. Non-string elements are ignored and
// nested objects are not searched. By default such arrays are skipped.
func WithStringLists() Option {
	return func(w *Walker) { w.stringLists = true }
}

// Group groups multiple options into one, e.g.:
//
//	mailwalk.NewWalker(mailwalk.Group(mailwalk.WithKey("mail"), mailwalk.WithStringLists()))
func Group(opts ...Option) Option {
	return func(w *Walker) { Apply(w, opts...) }
}

// Apply applies one or more options to an existing walker, in order. Nil
// options are skipped.
func Apply(w *Walker, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
}
