package output

// T looks up console messages by key for a locale. data fills template
// placeholders and may be nil. Unknown keys render as the key itself.
type T interface {
	T(locale, key string, data map[string]any) string
}
