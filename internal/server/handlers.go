package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-analyzer/internal/analyze"
	"github.com/jonathan/cv-analyzer/internal/extract"
	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/types"
)

const maxUploadBytes = 10 << 20 // 10 MB

// AnalyzeRequest is the JSON body accepted by POST /analyze.
type AnalyzeRequest struct {
	Text           string `json:"text" validate:"required"`
	Role           string `json:"role" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
	Strategy       string `json:"strategy,omitempty" validate:"omitempty,oneof=keyword similarity llm"`
}

// AnalyzeResponse wraps the analysis report with request metadata.
type AnalyzeResponse struct {
	RequestID string             `json:"request_id"`
	Report    types.ReportExport `json:"report"`
}

// RolesResponse lists the supported target roles.
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// handleAnalyze scores résumé text against a target role. It accepts
// either a JSON body or a multipart upload with a "file" part.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	strategy, cleanup, err := s.buildStrategy(r.Context(), req.Strategy)
	if err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	defer cleanup()

	ctx := r.Context()
	if req.Strategy == scoring.StrategyLLM {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.LLMTimeoutSeconds)*time.Second)
		defer cancel()
	}

	report, err := analyze.Run(ctx, analyze.Input{
		RawText:        req.Text,
		Role:           role,
		JobDescription: req.JobDescription,
	}, analyze.Options{
		MinTextLength: s.cfg.MinTextLength,
		Strategy:      strategy,
	})
	if err != nil {
		s.analyzeErrorResponse(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RequestID: requestID,
		Report:    report.Export(),
	})
}

// parseAnalyzeRequest decodes either a JSON body or a multipart form
// with an uploaded résumé file into an AnalyzeRequest.
func (s *Server) parseAnalyzeRequest(r *http.Request) (AnalyzeRequest, error) {
	var req AnalyzeRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return req, errors.New("invalid multipart form: " + err.Error())
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return req, errors.New("missing file part")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return req, errors.New("failed to read upload: " + err.Error())
		}
		text := extract.Text(header.Filename, data)
		if text == "" {
			return req, &analyze.UnsupportedFormatError{Filename: header.Filename}
		}
		req.Text = text
		req.Role = r.FormValue("role")
		req.JobDescription = r.FormValue("job_description")
		req.Strategy = r.FormValue("strategy")
		return req, nil
	}

	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		return req, errors.New("invalid JSON body: " + err.Error())
	}
	return req, nil
}

// buildStrategy resolves the requested scoring strategy. The returned
// cleanup releases any backend client and is always safe to call.
func (s *Server) buildStrategy(ctx context.Context, name string) (scoring.Strategy, func(), error) {
	noop := func() {}
	switch name {
	case "", scoring.StrategyKeyword:
		return scoring.KeywordStrategy{}, noop, nil
	case scoring.StrategySimilarity:
		return scoring.NewSimilarityBlendStrategy(), noop, nil
	case scoring.StrategyLLM:
		apiKey := s.cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, noop, errors.New("LLM backend unavailable: " + err.Error())
		}
		analyzer := llm.NewAnalyzer(client)
		analyzer.TextBudget = s.cfg.TextBudget
		return analyzer, func() { client.Close() }, nil
	default:
		return nil, noop, errors.New("unknown strategy: " + name)
	}
}

// analyzeErrorResponse maps analysis errors to HTTP statuses.
func (s *Server) analyzeErrorResponse(w http.ResponseWriter, requestID string, err error) {
	log.Printf("analyze request %s failed: %v", requestID, err)

	var insufficient *analyze.InsufficientContentError
	var unsupported *analyze.UnsupportedFormatError
	var backend *analyze.BackendFailureError

	switch {
	case errors.As(err, &insufficient):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &unsupported):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &backend):
		s.errorResponse(w, http.StatusBadGateway, err.Error())
	default:
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	}
}

// handleRoles returns the supported target roles.
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	roles := types.AllRoles()
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}
	s.jsonResponse(w, http.StatusOK, RolesResponse{Roles: names})
}
