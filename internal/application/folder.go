package application

import (
	"strings"

	"github.com/linskybing/docflow/internal/domain/template"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
)

type FolderService struct {
	Repos *repository.Repos
}

func NewFolderService(repos *repository.Repos) *FolderService {
	return &FolderService{
		Repos: repos,
	}
}

// CreateFolder is reserved for users with folder access.
func (s *FolderService) CreateFolder(actor user.Actor, input template.FolderInput) (*template.Folder, error) {
	if !actor.HasElevatedAccess() {
		return nil, apperr.Forbidden("only users with folder access may create folders")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Validation("folder name is required", []string{"name"})
	}
	f := &template.Folder{Name: name}
	if err := s.Repos.Folder.CreateFolder(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FolderService) ListFolders() ([]template.Folder, error) {
	return s.Repos.Folder.ListFolders()
}
