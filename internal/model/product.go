package model

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCoins  uint64 `json:"price_coins"`
	ImageURL    string `json:"image_url,omitempty"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCoins  uint64 `json:"price_coins"`
	ImageURL    string `json:"image_url"`

	// GenerateImage asks the AI endpoint for a product image when no
	// image_url is given.
	GenerateImage bool `json:"generate_image"`
}

type CreateProductResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url,omitempty"`
}

type UpdateProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCoins  uint64 `json:"price_coins"`
	ImageURL    string `json:"image_url"`
}

type UpdateProductResponse struct{}

type DeleteProductRequest struct {
	ID string `json:"id"`
}

type DeleteProductResponse struct{}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product Product `json:"product"`
}

type GetListProductRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListProductResponse struct {
	Products []Product `json:"products"`
}
