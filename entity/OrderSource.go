package entity

type OrderSource string

const (
	OrderSourcePOS OrderSource = "POS"
	OrderSourceWeb OrderSource = "WEB"
)

func (s OrderSource) Valid() bool {
	return s == OrderSourcePOS || s == OrderSourceWeb
}
