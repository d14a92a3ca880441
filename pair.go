package enumerable

import "github.com/denismitr/enumerable/utils"

// KeyValuePair is the element type of a Dictionary.
type KeyValuePair[K, V any] = utils.Pair[K, V]
