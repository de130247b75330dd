package repository

import (
	"zoo_api/internal/models"
	"zoo_api/internal/storage"
)

type Repositories struct {
	Zoo  BaseRepository[models.Zoo]
	Bear BaseRepository[models.Bear]
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Zoo:  NewBaseRepository[models.Zoo](db),
		Bear: NewBaseRepository[models.Bear](db),
	}
}
