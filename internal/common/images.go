package common

import (
	"context"
	"io"

	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/storage"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

var allowedImageMimes = []string{"image/png", "image/jpeg", "image/webp"}

// ProcessImage reads an image part from the multipart request and uploads it
// to object storage.
func ProcessImage(
	ctx context.Context, fileStorage storage.Storage, key, prefix string,
) (*storage.UploadResponse, error) {
	req := xcontext.HTTPRequest(ctx)
	if err := req.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := req.FormFile(key)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Error retrieving the File")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if !slices.Contains(allowedImageMimes, mime) {
		return nil, errorx.New(errorx.BadRequest, "Unsupported image type %s", mime)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read image: %v", err)
		return nil, errorx.Unknown
	}

	resp, err := fileStorage.Upload(ctx, &storage.UploadObject{
		Bucket:   xcontext.Configs(ctx).Storage.Bucket,
		Prefix:   prefix,
		FileName: header.Filename,
		Mime:     mime,
		Data:     data,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	return resp, nil
}

// ReadImagePart reads an image part from the multipart request without
// uploading it.
func ReadImagePart(ctx context.Context, key string) ([]byte, string, error) {
	req := xcontext.HTTPRequest(ctx)
	if err := req.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, "", errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := req.FormFile(key)
	if err != nil {
		return nil, "", errorx.New(errorx.BadRequest, "Error retrieving the File")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if !slices.Contains(allowedImageMimes, mime) {
		return nil, "", errorx.New(errorx.BadRequest, "Unsupported image type %s", mime)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read image: %v", err)
		return nil, "", errorx.Unknown
	}

	return data, mime, nil
}
