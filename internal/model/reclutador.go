package model

// Reclutador represents a recruiter, optionally attached to an empresa.
type Reclutador struct {
	ID        int64    `json:"id"`
	Nombre    string   `json:"nombre"`
	Email     string   `json:"email,omitempty"`
	Telefono  string   `json:"telefono,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	EmpresaID int64    `json:"empresaId,omitempty"`
	Empresa   *Empresa `json:"empresa,omitempty"`
}

// ReclutadorRequest represents the payload for creating or updating
// a reclutador.
type ReclutadorRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	EmpresaID int64  `json:"empresaId,omitempty"`
}
