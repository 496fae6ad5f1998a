package helpers

import "context"

// Translator resolves a translation key to display text.
type Translator func(key string) string

type translatorKey struct{}

// WithTranslator stores the translator used to fill labelled nodes.
func WithTranslator(ctx context.Context, t Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, t)
}

// T resolves key through the context translator, or returns the key.
func T(ctx context.Context, key string) string {
	if t, ok := ctx.Value(translatorKey{}).(Translator); ok && t != nil {
		return t(key)
	}
	return key
}
