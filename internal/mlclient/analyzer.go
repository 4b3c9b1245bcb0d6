// Package mlclient talks to the external body-analysis service.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"fitflow/internal/middleware"
	"fitflow/internal/observability"
)

// AnalysisRequest carries the caller's body metrics alongside the photo
// so the model can calibrate its estimates.
type AnalysisRequest struct {
	Image    []byte
	Filename string
	WeightKg float64
	HeightCm float64
	Age      int
	Gender   string
}

// AnalysisResult is the parsed response from the analysis service.
type AnalysisResult struct {
	BodyFatEstimate float64 `json:"bodyFatEstimate"`
	MuscleScore     float64 `json:"muscleScore"`
	PostureScore    float64 `json:"postureScore"`
	OverallScore    float64 `json:"overallScore"`
	Confidence      float64 `json:"confidence"`
	QualityScore    float64 `json:"qualityScore"`
	Feedback        string  `json:"feedback"`
}

// Analyzer scores a progress photo. Implementations may be remote
// services or test fakes; callers must tolerate errors and proceed
// without an analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

// HTTPAnalyzer calls the analysis service over HTTP multipart.
type HTTPAnalyzer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAnalyzer returns an Analyzer for the service at baseURL.
func NewHTTPAnalyzer(baseURL string) *HTTPAnalyzer {
	return &HTTPAnalyzer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	ctx, span := observability.TraceExternalCall(ctx, "ml-service", "analyze")
	defer span.End()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("image", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	_ = w.WriteField("weight", fmt.Sprintf("%g", req.WeightKg))
	_ = w.WriteField("height", fmt.Sprintf("%g", req.HeightCm))
	_ = w.WriteField("age", fmt.Sprintf("%d", req.Age))
	_ = w.WriteField("gender", req.Gender)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/analyze", &body)
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(httpReq)
	if err != nil {
		middleware.ExternalCallFailures.WithLabelValues("ml-service").Inc()
		span.RecordError(err)
		return nil, fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.ExternalCallFailures.WithLabelValues("ml-service").Inc()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analysis service returned %d: %s", resp.StatusCode, snippet)
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &result, nil
}
