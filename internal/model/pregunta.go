package model

// Pregunta represents an interview question recorded against a candidatura.
type Pregunta struct {
	ID            int64  `json:"id"`
	Texto         string `json:"texto"`
	Respuesta     string `json:"respuesta,omitempty"`
	CandidaturaID int64  `json:"candidaturaId"`
}

// PreguntaRequest represents the payload for creating or updating a pregunta.
type PreguntaRequest struct {
	Texto         string `json:"texto"`
	Respuesta     string `json:"respuesta,omitempty"`
	CandidaturaID int64  `json:"candidaturaId"`
}
