package kvfifo

// Copier duplicates a key or value of type T. Supply one when the type owns
// resources whose duplication can fail; a failed copy surfaces as a CopyFailure
// error from the operation that needed the copy. A nil Copier means plain
// assignment, which never fails.
type Copier[T any] func(T) (T, error)
