package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/collabhub/backend/models"
	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for the gorm repositories.
type memoryStore struct {
	mu         sync.Mutex
	users      map[string]*models.User
	interests  map[uuid.UUID][]uint
	projects   []*models.Project
	tags       map[uint]string
	expertises map[uint]string
	clock      time.Time
	addErr     error
	findErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:      make(map[string]*models.User),
		interests:  make(map[uuid.UUID][]uint),
		tags:       map[uint]string{1: "Go", 2: "Rust", 3: "Python"},
		expertises: map[uint]string{1: "Novice", 5: "Expert"},
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) Add(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return m.addErr
	}
	user.ID = uuid.New()
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *memoryStore) FindActiveByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.users[email]
	if !ok || user.Deleted {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (m *memoryStore) FindTagIDsByUser(_ context.Context, userID uuid.UUID) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interests[userID], nil
}

func (m *memoryStore) AddWithLinks(_ context.Context, project *models.Project, tags []models.ProjectTag,
	technologies []models.Technology, positions []models.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return m.addErr
	}

	m.clock = m.clock.Add(time.Minute)
	project.ID = uuid.New()
	project.CreatedAt = m.clock

	stored := *project
	for _, t := range tags {
		t.ProjectID = project.ID
		t.Tag = models.Tag{ID: t.TagID, Name: m.tags[t.TagID]}
		stored.ProjectTags = append(stored.ProjectTags, t)
	}
	for _, t := range technologies {
		t.ProjectID = project.ID
		t.Tag = models.Tag{ID: t.TagID, Name: m.tags[t.TagID]}
		t.Expertise = models.Expertise{ID: t.ExpertiseID, Name: m.expertises[t.ExpertiseID]}
		stored.Technologies = append(stored.Technologies, t)
	}
	for _, p := range positions {
		p.ProjectID = project.ID
		stored.Positions = append(stored.Positions, p)
	}
	m.projects = append(m.projects, &stored)
	return nil
}

func (m *memoryStore) FindFeed(_ context.Context, viewerID uuid.UUID, tagIDs []uint) ([]*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := make(map[uint]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}

	var out []*models.Project
	for _, p := range m.projects {
		if p.Deleted || p.UserID == viewerID {
			continue
		}
		if len(wanted) > 0 && !hasAnyTag(p, wanted) {
			continue
		}
		out = append(out, p)
	}
	newestFirst(out)
	return out, nil
}

func (m *memoryStore) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.Project
	for _, p := range m.projects {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	newestFirst(out)
	return out, nil
}

func (m *memoryStore) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.projects {
		if p.ID == id && p.UserID == ownerID {
			return p, nil
		}
	}
	return nil, nil
}

func hasAnyTag(p *models.Project, wanted map[uint]bool) bool {
	for _, t := range p.ProjectTags {
		if wanted[t.TagID] {
			return true
		}
	}
	return false
}

func newestFirst(projects []*models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
