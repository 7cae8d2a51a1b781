package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/api/gemini"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/storage"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ShopDomain interface {
	CreateProduct(context.Context, *model.CreateProductRequest) (*model.CreateProductResponse, error)
	UpdateProduct(context.Context, *model.UpdateProductRequest) (*model.UpdateProductResponse, error)
	DeleteProduct(context.Context, *model.DeleteProductRequest) (*model.DeleteProductResponse, error)
	GetProduct(context.Context, *model.GetProductRequest) (*model.GetProductResponse, error)
	GetProducts(context.Context, *model.GetListProductRequest) (*model.GetListProductResponse, error)
}

type shopDomain struct {
	productRepo        repository.ProductRepository
	userRepo           repository.UserRepository
	storage            storage.Storage
	geminiEndpoint     gemini.IEndpoint
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewShopDomain(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	storage storage.Storage,
	geminiEndpoint gemini.IEndpoint,
) *shopDomain {
	return &shopDomain{
		productRepo:        productRepo,
		userRepo:           userRepo,
		storage:            storage,
		geminiEndpoint:     geminiEndpoint,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *shopDomain) CreateProduct(
	ctx context.Context, req *model.CreateProductRequest,
) (*model.CreateProductResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating product: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a name")
	}

	if req.PriceCoins == 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive price")
	}

	imageURL := req.ImageURL
	if imageURL == "" && req.GenerateImage {
		generated, err := d.generateProductImage(ctx, req.Name, req.Description)
		if err != nil {
			// The product can live without a picture.
			xcontext.Logger(ctx).Warnf("Cannot generate product image: %v", err)
		} else {
			imageURL = generated
		}
	}

	product := &entity.Product{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		PriceCoins:  req.PriceCoins,
		ImageURL:    imageURL,
		CreatedBy:   xcontext.RequestUserID(ctx),
	}

	if err := d.productRepo.Create(ctx, product); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create product: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateProductResponse{
		ID:       product.ID,
		ImageURL: product.ImageURL,
	}, nil
}

func (d *shopDomain) UpdateProduct(
	ctx context.Context, req *model.UpdateProductRequest,
) (*model.UpdateProductResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating product: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	updateMap := map[string]any{}
	if req.Name != "" {
		updateMap["name"] = req.Name
	}

	if req.Description != "" {
		updateMap["description"] = req.Description
	}

	if req.PriceCoins != 0 {
		updateMap["price_coins"] = req.PriceCoins
	}

	if req.ImageURL != "" {
		updateMap["image_url"] = req.ImageURL
	}

	if err := d.productRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update product: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProductResponse{}, nil
}

func (d *shopDomain) DeleteProduct(
	ctx context.Context, req *model.DeleteProductRequest,
) (*model.DeleteProductResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting product: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.productRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete product: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteProductResponse{}, nil
}

func (d *shopDomain) GetProduct(
	ctx context.Context, req *model.GetProductRequest,
) (*model.GetProductResponse, error) {
	product, err := d.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found product")
		}

		xcontext.Logger(ctx).Errorf("Cannot get product: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetProductResponse{Product: convertProduct(product)}, nil
}

func (d *shopDomain) GetProducts(
	ctx context.Context, req *model.GetListProductRequest,
) (*model.GetListProductResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	products, err := d.productRepo.GetList(ctx, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get products: %v", err)
		return nil, errorx.Unknown
	}

	clientProducts := []model.Product{}
	for i := range products {
		clientProducts = append(clientProducts, convertProduct(&products[i]))
	}

	return &model.GetListProductResponse{Products: clientProducts}, nil
}

func (d *shopDomain) generateProductImage(ctx context.Context, name, description string) (string, error) {
	prompt := fmt.Sprintf(
		"A clean product photo of %s, an ayurvedic product made from recycled temple flowers. %s",
		name, description)

	image, err := d.geminiEndpoint.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}

	resp, err := d.storage.Upload(ctx, &storage.UploadObject{
		Bucket:   xcontext.Configs(ctx).Storage.Bucket,
		Prefix:   "products",
		FileName: fmt.Sprintf("%s.png", name),
		Mime:     "image/png",
		Data:     image,
	})
	if err != nil {
		return "", err
	}

	return resp.Url, nil
}
