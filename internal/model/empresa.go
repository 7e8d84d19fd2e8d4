package model

// Empresa represents a company behind one or more candidaturas.
type Empresa struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Sector    string `json:"sector,omitempty"`
	Ubicacion string `json:"ubicacion,omitempty"`
	Web       string `json:"web,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}

// EmpresaRequest represents the payload for creating or updating an empresa.
type EmpresaRequest struct {
	Nombre    string `json:"nombre"`
	Sector    string `json:"sector,omitempty"`
	Ubicacion string `json:"ubicacion,omitempty"`
	Web       string `json:"web,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}
