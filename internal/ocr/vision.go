package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

const textDetectionFeature = "TEXT_DETECTION"

// VisionService implements Service with Google Cloud Vision text detection
type VisionService struct {
	opts    []option.ClientOption
	service *vision.Service
}

// NewVisionService creates a Cloud Vision backed OCR service. The API client
// is created on the first request, so missing credentials only surface once
// an image is actually submitted.
func NewVisionService(opts ...option.ClientOption) *VisionService {
	return &VisionService{opts: opts}
}

// Name returns the service name
func (v *VisionService) Name() string {
	return "Cloud Vision"
}

// DetectText runs TEXT_DETECTION on the image
func (v *VisionService) DetectText(ctx context.Context, content []byte) (*Response, error) {
	if err := v.connect(ctx); err != nil {
		return nil, err
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{
					Content: base64.StdEncoding.EncodeToString(content),
				},
				Features: []*vision.Feature{
					{Type: textDetectionFeature},
				},
			},
		},
	}

	batch, err := v.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Cloud Vision API error: %w", err)
	}

	resp := &Response{}
	if len(batch.Responses) == 0 || batch.Responses[0] == nil {
		return resp, nil
	}

	result := batch.Responses[0]
	if result.Error != nil && result.Error.Message != "" {
		resp.Error = result.Error.Message
	}
	for _, annotation := range result.TextAnnotations {
		resp.Annotations = append(resp.Annotations, annotation.Description)
	}

	return resp, nil
}

func (v *VisionService) connect(ctx context.Context) error {
	if v.service != nil {
		return nil
	}

	service, err := vision.NewService(ctx, v.opts...)
	if err != nil {
		return fmt.Errorf("failed to create Cloud Vision client: %w", err)
	}
	v.service = service
	return nil
}
