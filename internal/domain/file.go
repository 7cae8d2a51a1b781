package domain

import (
	"context"

	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/pkg/storage"
)

type FileDomain interface {
	UploadImage(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	storage storage.Storage
}

func NewFileDomain(storage storage.Storage) *fileDomain {
	return &fileDomain{storage: storage}
}

func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	resp, err := common.ProcessImage(ctx, d.storage, "image", "images")
	if err != nil {
		return nil, err
	}

	return &model.UploadImageResponse{Url: resp.Url}, nil
}
