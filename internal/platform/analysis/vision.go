// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analysis

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// maxLabels bounds LABEL_DETECTION results.
const maxLabels = 15

// Vision analyses photos with Google Cloud Vision.
type Vision struct {
	service *vision.Service
}

// NewVision builds the Vision client. An empty apiKey falls back to
// Application Default Credentials.
func NewVision(ctx context.Context, apiKey string) (*Vision, error) {
	opts := []option.ClientOption{option.WithScopes(vision.CloudPlatformScope)}
	if apiKey != "" {
		opts = []option.ClientOption{option.WithAPIKey(apiKey)}
	}

	service, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("analysis: vision client: %w", err)
	}
	return &Vision{service: service}, nil
}

// Analyze runs label and image-properties detection on one photo.
func (v *Vision) Analyze(ctx context.Context, image []byte) (Attributes, error) {
	prepared, err := Prepare(image)
	if err != nil {
		return Attributes{}, err
	}

	request := &vision.AnnotateImageRequest{
		Image: &vision.Image{Content: base64.StdEncoding.EncodeToString(prepared)},
		Features: []*vision.Feature{
			{Type: "LABEL_DETECTION", MaxResults: maxLabels},
			{Type: "IMAGE_PROPERTIES"},
		},
	}

	call := v.service.Images.Annotate(&vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{request},
	})
	response, err := call.Context(ctx).Do()
	if err != nil {
		return Attributes{}, fmt.Errorf("analysis: vision annotate: %w", err)
	}
	if len(response.Responses) == 0 {
		return Attributes{}, errors.New("analysis: vision returned no response")
	}

	result := response.Responses[0]
	if result.Error != nil {
		return Attributes{}, fmt.Errorf("analysis: vision: %s", result.Error.Message)
	}

	labels := make([]string, 0, len(result.LabelAnnotations))
	for _, annotation := range result.LabelAnnotations {
		labels = append(labels, annotation.Description)
	}

	return FromLabels(labels, dominantColor(result.ImagePropertiesAnnotation)), nil
}

// dominantColor names the highest-scoring color of the image, or "".
func dominantColor(properties *vision.ImageProperties) string {
	if properties == nil || properties.DominantColors == nil {
		return ""
	}

	var best *vision.ColorInfo
	for _, info := range properties.DominantColors.Colors {
		if info.Color == nil {
			continue
		}
		if best == nil || info.Score > best.Score {
			best = info
		}
	}
	if best == nil {
		return ""
	}
	return NearestColor(best.Color.Red, best.Color.Green, best.Color.Blue)
}
