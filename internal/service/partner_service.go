package service

import (
	"strings"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
)

type PartnerService interface {
	CreateSupplier(req *model.Supplier, actor Actor) error
	UpdateSupplier(id uuid.UUID, req *model.Supplier, actor Actor) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID, actor Actor) error
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uuid.UUID) (*model.Supplier, error)

	CreateClient(req *model.Client, actor Actor) error
	UpdateClient(id uuid.UUID, req *model.Client, actor Actor) (*model.Client, error)
	DeleteClient(id uuid.UUID, actor Actor) error
	GetAllClients() ([]model.Client, error)
	GetClientByID(id uuid.UUID) (*model.Client, error)
}

type partnerService struct {
	suppliers repository.SupplierRepository
	clients   repository.ClientRepository
}

func NewPartnerService(suppliers repository.SupplierRepository, clients repository.ClientRepository) PartnerService {
	return &partnerService{suppliers: suppliers, clients: clients}
}

func (s *partnerService) CreateSupplier(req *model.Supplier, actor Actor) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return err
	}
	req.ID = uuid.Nil
	req.Stamp(actor.ID)
	return s.suppliers.Create(req)
}

func (s *partnerService) UpdateSupplier(id uuid.UUID, req *model.Supplier, actor Actor) (*model.Supplier, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.suppliers.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrSupplierNotFound)
	}
	existing.Name = req.Name
	existing.ContactName = req.ContactName
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Note = req.Note
	existing.Touch(actor.ID)

	if err := s.suppliers.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *partnerService) DeleteSupplier(id uuid.UUID, actor Actor) error {
	return notFound(s.suppliers.Delete(id, actor.ID), ErrSupplierNotFound)
}

func (s *partnerService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.suppliers.FindAll()
}

func (s *partnerService) GetSupplierByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.suppliers.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrSupplierNotFound)
	}
	return supplier, nil
}

func (s *partnerService) CreateClient(req *model.Client, actor Actor) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return err
	}
	req.ID = uuid.Nil
	req.Stamp(actor.ID)
	return s.clients.Create(req)
}

func (s *partnerService) UpdateClient(id uuid.UUID, req *model.Client, actor Actor) (*model.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.clients.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	existing.Name = req.Name
	existing.TaxID = req.TaxID
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Touch(actor.ID)

	if err := s.clients.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *partnerService) DeleteClient(id uuid.UUID, actor Actor) error {
	return notFound(s.clients.Delete(id, actor.ID), ErrClientNotFound)
}

func (s *partnerService) GetAllClients() ([]model.Client, error) {
	return s.clients.FindAll()
}

func (s *partnerService) GetClientByID(id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	return client, nil
}
