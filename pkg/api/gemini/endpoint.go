package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/templetoayurveda/backend/config"
	"github.com/templetoayurveda/backend/pkg/api"
	"github.com/templetoayurveda/backend/pkg/xcontext"
)

const apiURL = "https://generativelanguage.googleapis.com"

const classifyPrompt = `Classify the ritual waste in this image. Respond with
only a JSON object of the shape {"items": [{"name": string, "category":
string, "percentage": number, "recycleOutput": string}],
"overallRecyclability": string, "recommendedBins": [string], "summary":
string}. Categories are FLOWERS, LEAVES, CLOTH, OIL, OTHER.`

type IEndpoint interface {
	GenerateText(ctx context.Context, prompt, systemInstruction string) (string, error)
	ClassifyImage(ctx context.Context, image []byte, mime string) (*Classification, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
	GroundedRoute(ctx context.Context, location, destination string) (string, error)
}

type ClassifiedItem struct {
	Name          string  `mapstructure:"name" json:"name"`
	Category      string  `mapstructure:"category" json:"category"`
	Percentage    float64 `mapstructure:"percentage" json:"percentage"`
	RecycleOutput string  `mapstructure:"recycleOutput" json:"recycle_output"`
}

type Classification struct {
	Items                []ClassifiedItem `mapstructure:"items" json:"items"`
	OverallRecyclability string           `mapstructure:"overallRecyclability" json:"overall_recyclability"`
	RecommendedBins      []string         `mapstructure:"recommendedBins" json:"recommended_bins"`
	Summary              string           `mapstructure:"summary" json:"summary"`
}

type Endpoint struct {
	cfg          config.GeminiConfigs
	apiGenerator api.Generator
}

func New(cfg config.GeminiConfigs) *Endpoint {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}

	return &Endpoint{
		cfg:          cfg,
		apiGenerator: api.NewGenerator(endpoint),
	}
}

func (e *Endpoint) GenerateText(
	ctx context.Context, prompt, systemInstruction string,
) (string, error) {
	body := api.JSON{
		"contents": []api.JSON{
			{"parts": []api.JSON{{"text": prompt}}},
		},
	}

	if systemInstruction != "" {
		body["systemInstruction"] = api.JSON{
			"parts": []api.JSON{{"text": systemInstruction}},
		}
	}

	return e.generateContent(ctx, e.cfg.TextModel, body)
}

func (e *Endpoint) ClassifyImage(
	ctx context.Context, image []byte, mime string,
) (*Classification, error) {
	body := api.JSON{
		"contents": []api.JSON{
			{"parts": []api.JSON{
				{"text": classifyPrompt},
				{"inline_data": api.JSON{
					"mime_type": mime,
					"data":      base64.StdEncoding.EncodeToString(image),
				}},
			}},
		},
		"generationConfig": api.JSON{"response_mime_type": "application/json"},
	}

	text, err := e.generateContent(ctx, e.cfg.TextModel, body)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("cannot parse classification: %w", err)
	}

	result := Classification{}
	if err := mapstructure.Decode(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid classification schema: %w", err)
	}

	return &result, nil
}

func (e *Endpoint) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	body := api.JSON{
		"contents": []api.JSON{
			{"parts": []api.JSON{{"text": prompt}}},
		},
		"generationConfig": api.JSON{"responseModalities": []string{"IMAGE"}},
	}

	part, err := e.firstPart(ctx, e.cfg.ImageModel, body)
	if err != nil {
		return nil, err
	}

	inline, err := part.GetJSON("inlineData")
	if err != nil || inline == nil {
		return nil, errors.New("no image in response")
	}

	data, err := inline.GetString("data")
	if err != nil {
		return nil, err
	}

	return base64.StdEncoding.DecodeString(data)
}

func (e *Endpoint) GroundedRoute(
	ctx context.Context, location, destination string,
) (string, error) {
	prompt := fmt.Sprintf("Find drying units and temple waste collection points near %s.", location)
	if destination != "" {
		prompt = fmt.Sprintf("Describe a route from %s to %s for a waste pickup vehicle.", location, destination)
	}

	body := api.JSON{
		"contents": []api.JSON{
			{"parts": []api.JSON{{"text": prompt}}},
		},
		"tools": []api.JSON{{"google_maps": api.JSON{}}},
	}

	return e.generateContent(ctx, e.cfg.TextModel, body)
}

func (e *Endpoint) generateContent(
	ctx context.Context, model string, body api.JSON,
) (string, error) {
	part, err := e.firstPart(ctx, model, body)
	if err != nil {
		return "", err
	}

	return part.GetString("text")
}

func (e *Endpoint) firstPart(
	ctx context.Context, model string, body api.JSON,
) (api.JSON, error) {
	if e.cfg.Timeout > 0 {
		ctx = xcontext.WithHTTPClient(ctx, &http.Client{Timeout: e.cfg.Timeout})
	}

	resp, err := e.apiGenerator.New("/v1beta/models/%s:generateContent", model).
		Header("x-goog-api-key", e.cfg.APIKey).
		Body(body).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	if resp.Code != 200 {
		return nil, fmt.Errorf("got status code %d", resp.Code)
	}

	respBody, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errors.New("invalid body type")
	}

	candidates, err := respBody.GetArray("candidates")
	if err != nil || len(candidates) == 0 {
		return nil, errors.New("no candidates in response")
	}

	content, err := candidates[0].GetJSON("content")
	if err != nil {
		return nil, err
	}

	parts, err := content.GetArray("parts")
	if err != nil || len(parts) == 0 {
		return nil, errors.New("no parts in response")
	}

	return parts[0], nil
}
