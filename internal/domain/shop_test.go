package domain

import (
	"context"
	"testing"

	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/storage"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_shopDomain_CreateProduct_with_generated_image(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	d := NewShopDomain(
		repository.NewProductRepository(),
		repository.NewUserRepository(),
		&testutil.MockStorage{
			UploadFunc: func(ctx context.Context, obj *storage.UploadObject) (*storage.UploadResponse, error) {
				return &storage.UploadResponse{Url: "https://cdn.example.com/products/soap.png"}, nil
			},
		},
		&testutil.MockGeminiEndpoint{
			GenerateImageFunc: func(ctx context.Context, prompt string) ([]byte, error) {
				return []byte{0x89, 0x50, 0x4e, 0x47}, nil
			},
		},
	)

	created, err := d.CreateProduct(ctx, &model.CreateProductRequest{
		Name:          "Rose Incense Soap",
		Description:   "Soap made from recycled rose garlands",
		PriceCoins:    120,
		GenerateImage: true,
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/products/soap.png", created.ImageURL)

	got, err := d.GetProduct(ctx, &model.GetProductRequest{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "Rose Incense Soap", got.Product.Name)
	require.Equal(t, uint64(120), got.Product.PriceCoins)
}

func Test_shopDomain_CreateProduct_survives_image_failure(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	// The default mocks fail every call; the product must still be created.
	d := NewShopDomain(
		repository.NewProductRepository(),
		repository.NewUserRepository(),
		&testutil.MockStorage{},
		&testutil.MockGeminiEndpoint{},
	)

	created, err := d.CreateProduct(ctx, &model.CreateProductRequest{
		Name:          "Marigold Dhoop",
		PriceCoins:    60,
		GenerateImage: true,
	})
	require.NoError(t, err)
	require.Empty(t, created.ImageURL)
}

func Test_shopDomain_writes_are_admin_only(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	d := NewShopDomain(
		repository.NewProductRepository(),
		repository.NewUserRepository(),
		&testutil.MockStorage{},
		&testutil.MockGeminiEndpoint{},
	)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := d.CreateProduct(userCtx, &model.CreateProductRequest{
		Name:       "Marigold Dhoop",
		PriceCoins: 60,
	})
	require.Error(t, err)
	require.Equal(t, errorx.PermissionDenied, err.(errorx.Error).Code)

	// Public reads still work without a user.
	list, err := d.GetProducts(ctx, &model.GetListProductRequest{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, list.Products)
}
