package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, HealthResponse{Status: "ok"})
}

// readRequest parses the body and decodes its ciphertext.
func (s *Server) readRequest(w http.ResponseWriter, r *http.Request, defaultEnc input.Encoding) (*AnalysisRequest, input.Encoding, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	enc := defaultEnc
	if req.Encoding != "" {
		var err error
		if enc, err = input.ParseEncoding(req.Encoding); err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return nil, "", false
		}
	}
	return &req, enc, true
}

func (s *Server) decodeCiphertext(w http.ResponseWriter, req *AnalysisRequest, enc input.Encoding) (xorcrack.Bytes, bool) {
	ct, err := input.Decode(req.Ciphertext, enc)
	if err != nil {
		s.sendAnalysisError(w, err)
		return nil, false
	}
	s.metrics.ciphertextBytes.Observe(float64(len(ct)))
	return ct, true
}

// sendAnalysisError maps input validation failures to 400 and anything else
// to 500.
func (s *Server) sendAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xorcrack.ErrInvalidEncoding),
		errors.Is(err, xorcrack.ErrInvalidKey),
		errors.Is(err, xorcrack.ErrInvalidArgument):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		s.log.Error("analysis failed", "error", err)
		sendError(w, "Internal error", http.StatusInternalServerError)
	}
}

func (s *Server) options(req *AnalysisRequest) xorcrack.Options {
	opts := s.config.Options
	if req.MinKeyLength != 0 {
		opts.MinKeyLength = req.MinKeyLength
	}
	if req.MaxKeyLength != 0 {
		opts.MaxKeyLength = req.MaxKeyLength
	}
	if req.Candidates != 0 {
		opts.Candidates = req.Candidates
	}
	return opts
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, enc, ok := s.readRequest(w, r, input.Base64)
	if !ok {
		return
	}
	ct, ok := s.decodeCiphertext(w, req, enc)
	if !ok {
		return
	}

	opts := s.options(req).WithDefaults()
	ranked, err := xorcrack.EstimateKeyLength(ct, opts.MinKeyLength, opts.MaxKeyLength)
	s.metrics.recordAnalysis("rank", err)
	if err != nil {
		s.sendAnalysisError(w, err)
		return
	}

	out := make([]KeyLengthResponse, len(ranked))
	for i, c := range ranked {
		out[i] = KeyLengthResponse{Length: c.Length, Distance: c.Distance}
	}
	sendSuccess(w, out)
}

func (s *Server) handleCrack(w http.ResponseWriter, r *http.Request) {
	req, enc, ok := s.readRequest(w, r, input.Base64)
	if !ok {
		return
	}
	ct, ok := s.decodeCiphertext(w, req, enc)
	if !ok {
		return
	}

	opts := s.options(req)
	if req.KeyLength != 0 {
		key, err := xorcrack.RecoverKeyConcurrent(r.Context(), ct, req.KeyLength, opts.Workers)
		var pt xorcrack.Bytes
		if err == nil {
			pt, err = xorcrack.Xor(ct, key)
		}
		s.metrics.recordAnalysis("crack", err)
		if err != nil {
			s.sendAnalysisError(w, err)
			return
		}
		sendSuccess(w, []CrackResponse{crackResponse(xorcrack.Result{
			KeyLength: req.KeyLength,
			Key:       key,
			Plaintext: pt,
			Score:     xorcrack.Score(pt),
		})})
		return
	}

	results, err := xorcrack.Break(r.Context(), ct, opts)
	s.metrics.recordAnalysis("crack", err)
	if err != nil {
		s.sendAnalysisError(w, err)
		return
	}
	out := make([]CrackResponse, len(results))
	for i, res := range results {
		out[i] = crackResponse(res)
	}
	sendSuccess(w, out)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	req, enc, ok := s.readRequest(w, r, input.Base64)
	if !ok {
		return
	}
	ct, ok := s.decodeCiphertext(w, req, enc)
	if !ok {
		return
	}

	pt, err := xorcrack.Xor(ct, xorcrack.DecodeText(req.Key))
	s.metrics.recordAnalysis("decode", err)
	if err != nil {
		s.sendAnalysisError(w, err)
		return
	}
	sendSuccess(w, DecodeResponse{
		Plaintext:    pt.String(),
		PlaintextHex: pt.Hex(),
		Score:        xorcrack.Score(pt),
	})
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	req, enc, ok := s.readRequest(w, r, input.Hex)
	if !ok {
		return
	}
	lines, err := input.DecodeLines(req.Ciphertext, enc)
	if err != nil {
		s.sendAnalysisError(w, err)
		return
	}

	d, err := xorcrack.DetectSingleByteXor(lines)
	s.metrics.recordAnalysis("detect", err)
	if err != nil {
		s.sendAnalysisError(w, err)
		return
	}
	sendSuccess(w, DetectResponse{
		Line:      d.Index + 1,
		Key:       int(d.Key),
		Score:     d.Score,
		Plaintext: d.Plaintext.String(),
	})
}
