package entity

type Product struct {
	Base

	Name        string
	Description string
	PriceCoins  uint64
	ImageURL    string
	CreatedBy   string
}
