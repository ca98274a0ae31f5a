package projects_services

import (
	"codetutor/internal/cache"
	projects_models "codetutor/internal/features/projects/models"
	projects_repositories "codetutor/internal/features/projects/repositories"
	cache_utils "codetutor/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var savedExampleRepository = &projects_repositories.SavedExampleRepository{}

var projectService = &ProjectService{
	projectRepository,
	savedExampleRepository,
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "ct_project:"),
	singleflight.Group{},
}

func GetProjectService() *ProjectService {
	return projectService
}
