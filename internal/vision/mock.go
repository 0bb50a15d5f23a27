package vision

import "context"

// MockDetector permite tests sin un servicio de detección real.
type MockDetector struct {
	Faces []Face
	Err   error
}

func (m *MockDetector) EstimateFaces(ctx context.Context, image []byte) ([]Face, error) {
	return m.Faces, m.Err
}
