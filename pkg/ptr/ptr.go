package ptr

// Ptr возвращает указатель на значение. Удобно для опциональных полей
// и частичных патчей.
func Ptr[T any](v T) *T {
	return &v
}
