package services

import "github.com/collabhub/backend/models"

// TagRef and the other view types keep the key casing clients already read.
type TagRef struct {
	Name string `json:"name"`
}

type ProjectTagView struct {
	Tag TagRef `json:"Tag"`
}

type TechnologyView struct {
	Tag       TagRef `json:"Tag"`
	Expertise TagRef `json:"Expertise"`
}

type PositionView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// ProjectView is the expanded project record returned by every read operation.
type ProjectView struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Abstract     string           `json:"abstract"`
	Description  string           `json:"description"`
	ProjectTags  []ProjectTagView `json:"ProjectTags"`
	Positions    []PositionView   `json:"Positions"`
	Technologies []TechnologyView `json:"Technologies"`
}

func newProjectView(p *models.Project) ProjectView {
	view := ProjectView{
		ID:           p.ID.String(),
		Name:         p.Name,
		Abstract:     p.Abstract,
		Description:  p.Description,
		ProjectTags:  make([]ProjectTagView, 0, len(p.ProjectTags)),
		Positions:    make([]PositionView, 0, len(p.Positions)),
		Technologies: make([]TechnologyView, 0, len(p.Technologies)),
	}
	for _, pt := range p.ProjectTags {
		view.ProjectTags = append(view.ProjectTags, ProjectTagView{Tag: TagRef{Name: pt.Tag.Name}})
	}
	for _, pos := range p.Positions {
		view.Positions = append(view.Positions, PositionView{
			ID:          pos.ID,
			Name:        pos.Name,
			Description: pos.Description,
			Amount:      pos.Amount,
		})
	}
	for _, tech := range p.Technologies {
		view.Technologies = append(view.Technologies, TechnologyView{
			Tag:       TagRef{Name: tech.Tag.Name},
			Expertise: TagRef{Name: tech.Expertise.Name},
		})
	}
	return view
}

func newProjectViews(projects []*models.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	return views
}
