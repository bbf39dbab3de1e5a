package utils

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)
	return sliceCopy
}
