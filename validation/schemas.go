package validation

// UserPayload is the registration body. Password must already be a bcrypt hash.
type UserPayload struct {
	Name            string  `json:"name" validate:"required,notblank"`
	Lastname        string  `json:"lastname" validate:"required,notblank"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=60"`
	DepartmentEmail *string `json:"departmentEmail" validate:"omitempty,email"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProjectPayload struct {
	UserID       string              `json:"userId" validate:"required,len=36"`
	Name         string              `json:"name" validate:"required,notblank"`
	Abstract     string              `json:"abstract" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	Tags         []ProjectTagPayload `json:"tags" validate:"required,dive"`
	Technologies []TechnologyPayload `json:"technologies" validate:"required,dive"`
	Positions    []PositionPayload   `json:"positions" validate:"required,dive"`
}

// ProjectTagPayload pairs with the TechnologyPayload at the same index.
type ProjectTagPayload struct {
	TagID     int    `json:"tagId" validate:"gt=0"`
	ProjectID string `json:"projectId" validate:"omitempty,len=36"`
}

type TechnologyPayload struct {
	TagID       int    `json:"tagId" validate:"gt=0"`
	ExpertiseID int    `json:"expertiseId" validate:"gt=0"`
	ProjectID   string `json:"projectId" validate:"omitempty,len=36"`
}

type PositionPayload struct {
	ID          string `json:"id" validate:"len=36"`
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required"`
	Amount      int    `json:"amount" validate:"gt=0"`
	ProjectID   string `json:"projectId" validate:"omitempty,len=36"`
}
