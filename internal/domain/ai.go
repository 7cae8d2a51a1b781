package domain

import (
	"context"

	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/pkg/api/gemini"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
)

type AIDomain interface {
	Chat(context.Context, *model.ChatRequest) (*model.ChatResponse, error)
	ClassifyWaste(context.Context, *model.ClassifyWasteRequest) (*model.ClassifyWasteResponse, error)
	Route(context.Context, *model.RouteRequest) (*model.RouteResponse, error)
}

type aiDomain struct {
	geminiEndpoint gemini.IEndpoint
}

func NewAIDomain(geminiEndpoint gemini.IEndpoint) *aiDomain {
	return &aiDomain{geminiEndpoint: geminiEndpoint}
}

func (d *aiDomain) Chat(
	ctx context.Context, req *model.ChatRequest,
) (*model.ChatResponse, error) {
	if req.Prompt == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a prompt")
	}

	text, err := d.geminiEndpoint.GenerateText(ctx, req.Prompt, req.SystemInstruction)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate text: %v", err)
		return nil, errorx.New(errorx.Unavailable, "The assistant is unavailable right now")
	}

	return &model.ChatResponse{Text: text}, nil
}

func (d *aiDomain) ClassifyWaste(
	ctx context.Context, req *model.ClassifyWasteRequest,
) (*model.ClassifyWasteResponse, error) {
	image, mime, err := common.ReadImagePart(ctx, "image")
	if err != nil {
		return nil, err
	}

	classification, err := d.geminiEndpoint.ClassifyImage(ctx, image, mime)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot classify image: %v", err)
		return nil, errorx.New(errorx.Unavailable, "The classifier is unavailable right now")
	}

	return &model.ClassifyWasteResponse{Classification: *classification}, nil
}

func (d *aiDomain) Route(
	ctx context.Context, req *model.RouteRequest,
) (*model.RouteResponse, error) {
	if req.Location == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a location")
	}

	text, err := d.geminiEndpoint.GroundedRoute(ctx, req.Location, req.Destination)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate route: %v", err)
		return nil, errorx.New(errorx.Unavailable, "The route planner is unavailable right now")
	}

	return &model.RouteResponse{Text: text}, nil
}
