package projects_services

import (
	"errors"
	"fmt"
	"time"

	assistant "codetutor/internal/features/assistant"
	projects_dto "codetutor/internal/features/projects/dto"
	projects_models "codetutor/internal/features/projects/models"
	projects_repositories "codetutor/internal/features/projects/repositories"
	users_models "codetutor/internal/features/users/models"
	cache_utils "codetutor/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrExampleNotFound = errors.New("saved example not found")
	ErrNotProjectOwner = errors.New("insufficient permissions to access project")
)

type ProjectService struct {
	projectRepository      *projects_repositories.ProjectRepository
	savedExampleRepository *projects_repositories.SavedExampleRepository

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	owner *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:          uuid.New(),
		OwnerUserID: owner.ID,
		Name:        request.Name,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	return &projects_dto.ProjectResponseDTO{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
	}, nil
}

func (s *ProjectService) GetUserProjects(
	user *users_models.User,
) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsByOwner(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	response := &projects_dto.ListProjectsResponseDTO{
		Projects: make([]projects_dto.ProjectResponseDTO, 0, len(projects)),
	}

	for _, project := range projects {
		response.Projects = append(response.Projects, projects_dto.ProjectResponseDTO{
			ID:        project.ID,
			Name:      project.Name,
			CreatedAt: project.CreatedAt,
		})
	}

	return response, nil
}

func (s *ProjectService) GetProjectDetail(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	project, err := s.getOwnedProject(projectID, user)
	if err != nil {
		return nil, err
	}

	examples, err := s.savedExampleRepository.GetSavedExamplesByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved examples: %w", err)
	}

	return &projects_dto.ProjectDetailResponseDTO{
		ID:            project.ID,
		Name:          project.Name,
		CreatedAt:     project.CreatedAt,
		SavedExamples: examples,
	}, nil
}

// DeleteProject removes the project and, through the cascade, every saved
// example inside it. The caller is warned in the UI before reaching this.
func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	if _, err := s.getOwnedProject(projectID, user); err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	return nil
}

// SaveExample persists a result the user explicitly chose to keep. It is the
// only code path that creates saved examples.
func (s *ProjectService) SaveExample(
	projectID uuid.UUID,
	request *projects_dto.SaveExampleRequestDTO,
	user *users_models.User,
) (*projects_models.SavedExample, error) {
	if _, err := s.getOwnedProject(projectID, user); err != nil {
		return nil, err
	}

	if !request.OperationType.IsValid() {
		return nil, errors.New("invalid operation type, expected generate or explain")
	}

	if !request.Language.IsValid() {
		return nil, errors.New("invalid language, expected python, javascript or html")
	}

	switch request.OperationType {
	case assistant.OperationTypeGenerate:
		if request.OutputCode == nil || *request.OutputCode == "" {
			return nil, errors.New("output code is required for generate results")
		}
	case assistant.OperationTypeExplain:
		if request.Explanation == nil || *request.Explanation == "" {
			return nil, errors.New("explanation is required for explain results")
		}
	}

	example := &projects_models.SavedExample{
		ID:            uuid.New(),
		ProjectID:     projectID,
		OperationType: request.OperationType,
		Language:      request.Language,
		InputText:     request.InputText,
		OutputCode:    request.OutputCode,
		Explanation:   request.Explanation,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.savedExampleRepository.CreateSavedExample(example); err != nil {
		return nil, fmt.Errorf("failed to save example: %w", err)
	}

	return example, nil
}

func (s *ProjectService) DeleteExample(
	projectID uuid.UUID,
	exampleID uuid.UUID,
	user *users_models.User,
) error {
	if _, err := s.getOwnedProject(projectID, user); err != nil {
		return err
	}

	example, err := s.savedExampleRepository.GetSavedExampleByID(exampleID)
	if err != nil {
		return fmt.Errorf("failed to get saved example: %w", err)
	}

	if example == nil || example.ProjectID != projectID {
		return ErrExampleNotFound
	}

	if err := s.savedExampleRepository.DeleteSavedExample(exampleID); err != nil {
		return fmt.Errorf("failed to delete saved example: %w", err)
	}

	return nil
}

func (s *ProjectService) getOwnedProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if project == nil {
		return nil, ErrProjectNotFound
	}

	if project.OwnerUserID != user.ID {
		return nil, ErrNotProjectOwner
	}

	return project, nil
}

func (s *ProjectService) getProject(projectID uuid.UUID) (*projects_models.Project, error) {
	if cached := s.projectCacheUtil.Get(projectID.String()); cached != nil {
		return cached, nil
	}

	result, err, _ := s.singleflight.Do(projectID.String(), func() (any, error) {
		project, err := s.projectRepository.GetProjectByID(projectID)
		if err != nil {
			return nil, err
		}

		if project != nil {
			s.projectCacheUtil.Set(project.ID.String(), project)
		}

		return project, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project, _ := result.(*projects_models.Project)

	return project, nil
}
