package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/ingestion"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/google/uuid"
)

// maxMultipartMemory is how much of an upload is buffered in memory
const maxMultipartMemory = 32 << 20

// maxMatchBody bounds a match request body
const maxMatchBody = 1 << 20

// handleAnalyze accepts a multipart upload with fields file, targetRolePrompt
// and mustHaveCsv.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ingestion.MaxResumeBytes+maxMatchBody)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.handleError(w, err)
			return
		}
		s.handleError(w, &ErrValidation{Field: "body", Message: "expected multipart/form-data"})
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "file", Message: "is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size == 0 {
		s.handleError(w, &ingestion.UnsupportedInputError{FileName: header.Filename, Message: "empty file"})
		return
	}

	targetRole := strings.TrimSpace(r.FormValue("targetRolePrompt"))
	if targetRole == "" {
		s.handleError(w, &ErrValidation{Field: "targetRolePrompt", Message: "is required"})
		return
	}

	text, _, err := ingestion.ReadResume(header.Filename, file)
	if err != nil {
		s.handleError(w, err)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), &types.AnalyzeRequest{
		FileName:         header.Filename,
		Text:             text,
		TargetRolePrompt: targetRole,
		MustHaveCSV:      r.FormValue("mustHaveCsv"),
	})
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleMatch scores a JSON skill list against a target role
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMatchBody)).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	result, err := s.analyzer.Match(&req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetCandidate returns a stored candidate by ID
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	stored, err := s.analyzer.GetCandidate(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}
