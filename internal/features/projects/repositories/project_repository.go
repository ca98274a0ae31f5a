package projects_repositories

import (
	"time"

	projects_models "codetutor/internal/features/projects/models"
	"codetutor/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetProjectsByOwner(ownerUserID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

// DeleteProject removes the project row. The saved_examples rows go with it
// through the ON DELETE CASCADE foreign key.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Delete(&projects_models.Project{}, projectID).Error
}
