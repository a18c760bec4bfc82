package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/adhika-w/trafficx/pkg/util"
)

// HTTPProvider forwards frames to an external inference service and decodes
// its detections. The model runtime (weights, GPU, framework) stays on the
// other side of this boundary.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type detectionServiceResponse struct {
	Detections []Detection `json:"detections"`
}

func (p *HTTPProvider) Detect(ctx context.Context, image []byte) ([]Detection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: build request body")
	}
	if _, err := part.Write(image); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: build request body")
	}
	if err := writer.Close(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: build request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/detect", &body)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: inference service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, util.WrapErrorf(
			fmt.Errorf("inference service returned status %d", resp.StatusCode),
			util.ErrInternalServerError, "detection: inference failed")
	}

	var decoded detectionServiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "detection: decode inference response")
	}

	return decoded.Detections, nil
}

// StaticProvider returns a fixed detection list regardless of input. Used
// in tests and as an offline stand-in when no inference service is wired.
type StaticProvider struct {
	detections []Detection
}

func NewStaticProvider(detections []Detection) *StaticProvider {
	return &StaticProvider{detections: detections}
}

func (p *StaticProvider) Detect(_ context.Context, _ []byte) ([]Detection, error) {
	out := make([]Detection, len(p.detections))
	copy(out, p.detections)
	return out, nil
}
