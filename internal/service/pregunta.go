package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/model"
)

// PreguntaService maps the /preguntas resource collection. Preguntas
// are always scoped to a candidatura.
type PreguntaService struct {
	client *apiclient.Client
}

// NewPreguntaService creates a new PreguntaService.
func NewPreguntaService(client *apiclient.Client) *PreguntaService {
	return &PreguntaService{client: client}
}

// ListByCandidatura returns one page of the preguntas recorded against
// a candidatura.
func (s *PreguntaService) ListByCandidatura(ctx context.Context, candidaturaID int64, pageNum, size int) (model.Page[model.Pregunta], error) {
	page, err := apiclient.Get[model.Page[model.Pregunta]](ctx, s.client, "/preguntas", apiclient.Query{
		"candidaturaId": strconv.FormatInt(candidaturaID, 10),
		"page":          strconv.Itoa(pageNum),
		"size":          strconv.Itoa(size),
	})
	if err != nil {
		return model.Page[model.Pregunta]{}, err
	}
	page.Normalize()
	return page, nil
}

// Count returns how many preguntas a candidatura has.
func (s *PreguntaService) Count(ctx context.Context, candidaturaID int64) (int64, error) {
	return apiclient.Get[int64](ctx, s.client, "/preguntas/count", apiclient.Query{
		"candidaturaId": strconv.FormatInt(candidaturaID, 10),
	})
}

// Create creates a pregunta.
func (s *PreguntaService) Create(ctx context.Context, req model.PreguntaRequest) (model.Pregunta, error) {
	return apiclient.Post[model.Pregunta](ctx, s.client, "/preguntas", req)
}

// Update replaces a pregunta.
func (s *PreguntaService) Update(ctx context.Context, id int64, req model.PreguntaRequest) (model.Pregunta, error) {
	return apiclient.Put[model.Pregunta](ctx, s.client, fmt.Sprintf("/preguntas/%d", id), req)
}

// Delete removes a pregunta.
func (s *PreguntaService) Delete(ctx context.Context, id int64) error {
	_, err := apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/preguntas/%d", id), nil)
	return err
}
