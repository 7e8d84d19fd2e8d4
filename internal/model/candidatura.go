package model

// Estado is the lifecycle state of a candidatura.
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoEntrevista Estado = "ENTREVISTA"
	EstadoOferta     Estado = "OFERTA"
	EstadoRechazada  Estado = "RECHAZADA"
	EstadoAceptada   Estado = "ACEPTADA"
)

// Candidatura represents a tracked job application.
type Candidatura struct {
	ID          int64    `json:"id"`
	Puesto      string   `json:"puesto"`
	Descripcion string   `json:"descripcion,omitempty"`
	Estado      Estado   `json:"estado"`
	Fecha       string   `json:"fecha,omitempty"` // YYYY-MM-DD
	Notas       string   `json:"notas,omitempty"`
	EmpresaID   int64    `json:"empresaId,omitempty"`
	Empresa     *Empresa `json:"empresa,omitempty"`
}

// CandidaturaRequest represents the payload for creating or updating
// a candidatura.
type CandidaturaRequest struct {
	Puesto      string `json:"puesto"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      Estado `json:"estado,omitempty"`
	Fecha       string `json:"fecha,omitempty"`
	Notas       string `json:"notas,omitempty"`
	EmpresaID   int64  `json:"empresaId,omitempty"`
}
