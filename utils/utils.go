package utils

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func (o Order) String() string {
	if o == AscOrder {
		return "asc"
	}
	return "desc"
}

func GetZero[T any]() T {
	var result T
	return result
}
