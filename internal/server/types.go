package server

import "github.com/aldocassola/xorcrack"

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AnalysisRequest is the body of every analysis endpoint. Encoding defaults
// to base64, except for /detect where it defaults to hex.
type AnalysisRequest struct {
	Ciphertext string `json:"ciphertext"`
	Encoding   string `json:"encoding,omitempty"`

	// decode
	Key string `json:"key,omitempty"`

	// rank and crack
	KeyLength    int `json:"key_length,omitempty"`
	MinKeyLength int `json:"min_key_length,omitempty"`
	MaxKeyLength int `json:"max_key_length,omitempty"`
	Candidates   int `json:"candidates,omitempty"`
}

type KeyLengthResponse struct {
	Length   int     `json:"length"`
	Distance float64 `json:"distance"`
}

type CrackResponse struct {
	KeyLength int     `json:"key_length"`
	Distance  float64 `json:"distance,omitempty"`
	Key       string  `json:"key"`
	KeyHex    string  `json:"key_hex"`
	Score     int     `json:"score"`
	Plaintext string  `json:"plaintext"`
}

type DecodeResponse struct {
	Plaintext    string `json:"plaintext"`
	PlaintextHex string `json:"plaintext_hex"`
	Score        int    `json:"score"`
}

type DetectResponse struct {
	Line      int    `json:"line"`
	Key       int    `json:"key"`
	Score     int    `json:"score"`
	Plaintext string `json:"plaintext"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func crackResponse(r xorcrack.Result) CrackResponse {
	return CrackResponse{
		KeyLength: r.KeyLength,
		Distance:  r.Distance,
		Key:       r.Key.String(),
		KeyHex:    r.Key.Hex(),
		Score:     r.Score,
		Plaintext: r.Plaintext.String(),
	}
}
