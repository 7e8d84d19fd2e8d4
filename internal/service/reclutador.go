package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/model"
)

// ReclutadorService maps the /reclutadores resource collection and the
// reclutador-candidatura association endpoints.
type ReclutadorService struct {
	client *apiclient.Client
}

// NewReclutadorService creates a new ReclutadorService.
func NewReclutadorService(client *apiclient.Client) *ReclutadorService {
	return &ReclutadorService{client: client}
}

// ListReclutadoresParams are the paging and filter knobs for List.
type ListReclutadoresParams struct {
	Page      int
	Size      int
	Search    string
	EmpresaID int64
}

// List returns one page of reclutadores, optionally filtered by name
// search and empresa.
func (s *ReclutadorService) List(ctx context.Context, p ListReclutadoresParams) (model.Page[model.Reclutador], error) {
	q := apiclient.Query{
		"page":   strconv.Itoa(p.Page),
		"size":   strconv.Itoa(p.Size),
		"search": p.Search,
	}
	if p.EmpresaID > 0 {
		q["empresaId"] = strconv.FormatInt(p.EmpresaID, 10)
	}

	page, err := apiclient.Get[model.Page[model.Reclutador]](ctx, s.client, "/reclutadores", q)
	if err != nil {
		return model.Page[model.Reclutador]{}, err
	}
	page.Normalize()
	return page, nil
}

// Get fetches a single reclutador by id.
func (s *ReclutadorService) Get(ctx context.Context, id int64) (model.Reclutador, error) {
	return apiclient.Get[model.Reclutador](ctx, s.client, fmt.Sprintf("/reclutadores/%d", id), nil)
}

// Create creates a reclutador.
func (s *ReclutadorService) Create(ctx context.Context, req model.ReclutadorRequest) (model.Reclutador, error) {
	return apiclient.Post[model.Reclutador](ctx, s.client, "/reclutadores", req)
}

// Update replaces a reclutador.
func (s *ReclutadorService) Update(ctx context.Context, id int64, req model.ReclutadorRequest) (model.Reclutador, error) {
	return apiclient.Put[model.Reclutador](ctx, s.client, fmt.Sprintf("/reclutadores/%d", id), req)
}

// Delete removes a reclutador.
func (s *ReclutadorService) Delete(ctx context.Context, id int64) error {
	_, err := apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/reclutadores/%d", id), nil)
	return err
}

// Candidaturas returns one page of the candidaturas a reclutador manages.
func (s *ReclutadorService) Candidaturas(ctx context.Context, id int64, pageNum, size int) (model.Page[model.Candidatura], error) {
	page, err := apiclient.Get[model.Page[model.Candidatura]](ctx, s.client, fmt.Sprintf("/reclutadores/%d/candidaturas", id), apiclient.Query{
		"page": strconv.Itoa(pageNum),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return model.Page[model.Candidatura]{}, err
	}
	page.Normalize()
	return page, nil
}

// AssociateCandidatura links a candidatura to a reclutador.
func (s *ReclutadorService) AssociateCandidatura(ctx context.Context, reclutadorID, candidaturaID int64) error {
	path := fmt.Sprintf("/reclutador/%d/candidaturas/%d", reclutadorID, candidaturaID)
	_, err := apiclient.Post[struct{}](ctx, s.client, path, nil)
	return err
}

// DissociateCandidatura unlinks a candidatura from a reclutador.
func (s *ReclutadorService) DissociateCandidatura(ctx context.Context, reclutadorID, candidaturaID int64) error {
	path := fmt.Sprintf("/reclutador/%d/candidaturas/%d", reclutadorID, candidaturaID)
	_, err := apiclient.Delete[struct{}](ctx, s.client, path, nil)
	return err
}
