package database

import (
	"context"
	"errors"

	"github.com/collabhub/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// expanded preloads everything the project views render.
func expanded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ProjectTags.Tag").
		Preload("Technologies.Tag").
		Preload("Technologies.Expertise").
		Preload("Positions")
}

// AddWithLinks inserts the project and every tag, technology and position in one transaction.
// The new project id is stamped into each link before it is written. Nothing is kept if any insert fails.
func (r *ProjectRepo) AddWithLinks(ctx context.Context, project *models.Project, tags []models.ProjectTag,
	technologies []models.Technology, positions []models.Position) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}

		for i := range tags {
			tags[i].ProjectID = project.ID
		}
		for i := range technologies {
			technologies[i].ProjectID = project.ID
		}
		for i := range positions {
			positions[i].ProjectID = project.ID
		}

		if err := NewProjectTagRepo(tx).AddMany(tags); err != nil {
			return err
		}
		if err := NewTechnologyRepo(tx).AddMany(technologies); err != nil {
			return err
		}
		return NewPositionRepo(tx).AddMany(positions)
	})
}

// FindFeed returns live projects not owned by viewerID, newest first. When tagIDs is not empty only
// projects carrying at least one of those tags are returned.
func (r *ProjectRepo) FindFeed(ctx context.Context, viewerID uuid.UUID, tagIDs []uint) ([]*models.Project, error) {
	var projects []*models.Project
	q := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Where("user_id <> ?", viewerID)
	if len(tagIDs) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM project_tags WHERE project_tags.project_id = projects.id AND project_tags.tag_id IN ?)", tagIDs)
	}
	err := expanded(q).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByOwner returns every project of ownerID, soft-deleted ones included, newest first.
func (r *ProjectRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := expanded(r.db.WithContext(ctx)).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByIDAndOwner returns the project only when ownerID owns it, or nil when there is no match.
func (r *ProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := expanded(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
