package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Keypoint es un landmark facial con nombre de grupo (p.ej. "leftEyebrow_12").
type Keypoint struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Face es el conjunto de landmarks de una cara detectada.
type Face struct {
	Keypoints []Keypoint `json:"keypoints"`
}

// Detector abstrae el servicio de detección de landmarks faciales.
// Devolver cero caras no es un error: el extractor degrada a su fallback.
type Detector interface {
	EstimateFaces(ctx context.Context, image []byte) ([]Face, error)
}

// HTTPDetector implementa Detector contra un servicio externo de face mesh.
type HTTPDetector struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDetector construye un detector apuntando al endpoint de estimación.
func NewHTTPDetector(baseURL string) *HTTPDetector {
	return &HTTPDetector{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *HTTPDetector) EstimateFaces(ctx context.Context, image []byte) ([]Face, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/faces", bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("vision http error: status=%d", resp.StatusCode)
	}

	var out struct {
		Faces []Face `json:"faces"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return out.Faces, nil
}

// GroupKeypoints filtra los keypoints cuyo nombre contiene el prefijo de grupo.
func GroupKeypoints(face Face, group string) []Keypoint {
	var out []Keypoint
	for _, kp := range face.Keypoints {
		if strings.Contains(kp.Name, group) {
			out = append(out, kp)
		}
	}
	return out
}
