package service

import (
	"zoo_api/internal/models"
	"zoo_api/internal/repository"
)

type Services struct {
	ZooService  *ResourceService[models.Zoo]
	BearService *ResourceService[models.Bear]
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		ZooService:  NewResourceService("zoos", repos.Zoo),
		BearService: NewResourceService("bears", repos.Bear),
	}
}
