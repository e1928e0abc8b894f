// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analysis

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Image sizing for outbound analysis and catalog thumbnails.
const (
	maxAnalysisSide  = 1024
	analysisQuality  = 85
	thumbnailQuality = 70
)

// ErrNotInline is returned by [DecodeDataURL] for remote image URLs.
var ErrNotInline = errors.New("analysis: image is not an inline data URL")

// DecodeDataURL returns the bytes embedded in a "data:<mime>;base64,<payload>"
// URL. A bare base64 payload without the prefix is accepted too.
func DecodeDataURL(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNotInline
	}

	payload := raw
	if strings.HasPrefix(raw, "data:") {
		comma := strings.IndexByte(raw, ',')
		if comma < 0 {
			return nil, fmt.Errorf("analysis: malformed data URL")
		}
		if !strings.HasSuffix(raw[:comma], ";base64") {
			return nil, fmt.Errorf("analysis: data URL is not base64 encoded")
		}
		payload = raw[comma+1:]
	} else if strings.Contains(raw, "://") {
		return nil, ErrNotInline
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("analysis: decode base64: %w", err)
	}
	return data, nil
}

// Prepare decodes a photo, applies its EXIF orientation, shrinks it to fit the
// analysis size and re-encodes it as JPEG.
func Prepare(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("analysis: decode image: %w", err)
	}

	img = imaging.Fit(img, maxAnalysisSide, maxAnalysisSide, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(analysisQuality)); err != nil {
		return nil, fmt.Errorf("analysis: encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail returns a JPEG of data cropped and scaled to a size x size square.
func Thumbnail(data []byte, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("analysis: decode image: %w", err)
	}

	thumb := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return nil, fmt.Errorf("analysis: encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
