package projects_repositories

import (
	"time"

	projects_models "codetutor/internal/features/projects/models"
	"codetutor/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedExampleRepository struct{}

func (r *SavedExampleRepository) CreateSavedExample(example *projects_models.SavedExample) error {
	if example.ID == uuid.Nil {
		example.ID = uuid.New()
	}
	if example.CreatedAt.IsZero() {
		example.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(example).Error
}

func (r *SavedExampleRepository) GetSavedExampleByID(
	exampleID uuid.UUID,
) (*projects_models.SavedExample, error) {
	var example projects_models.SavedExample

	if err := storage.GetDb().Where("id = ?", exampleID).First(&example).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &example, nil
}

func (r *SavedExampleRepository) GetSavedExamplesByProject(
	projectID uuid.UUID,
) ([]*projects_models.SavedExample, error) {
	var examples = make([]*projects_models.SavedExample, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&examples).Error

	return examples, err
}

func (r *SavedExampleRepository) DeleteSavedExample(exampleID uuid.UUID) error {
	return storage.GetDb().Delete(&projects_models.SavedExample{}, exampleID).Error
}

func (r *SavedExampleRepository) CountByProject(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.SavedExample{}).
		Where("project_id = ?", projectID).
		Count(&count).Error

	return count, err
}
