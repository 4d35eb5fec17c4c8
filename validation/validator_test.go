package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "0b0e2a8e-5c0e-4a35-9d0e-6a86f1b1b0a1"

func validProject() ProjectPayload {
	return ProjectPayload{
		UserID:       testID,
		Name:         "Telescope",
		Abstract:     "Looking up",
		Description:  "A shared telescope schedule",
		Tags:         []ProjectTagPayload{{TagID: 1}, {TagID: 2}},
		Technologies: []TechnologyPayload{{TagID: 1, ExpertiseID: 3}, {TagID: 2, ExpertiseID: 1}},
		Positions:    []PositionPayload{{ID: testID, Name: "Backend", Description: "Go", Amount: 2}},
	}
}

func TestValidateProject(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		mutate     func(p *ProjectPayload)
		wantFields []string
	}{
		{"valid", func(p *ProjectPayload) {}, nil},
		{"empty links", func(p *ProjectPayload) {
			p.Tags, p.Technologies, p.Positions = []ProjectTagPayload{}, []TechnologyPayload{}, []PositionPayload{}
		}, nil},
		{"missing name", func(p *ProjectPayload) { p.Name = "" }, []string{"name"}},
		{"missing user id", func(p *ProjectPayload) { p.UserID = "" }, []string{"userId"}},
		{"short user id", func(p *ProjectPayload) { p.UserID = "abc" }, []string{"userId"}},
		{"non positive amount", func(p *ProjectPayload) { p.Positions[0].Amount = 0 }, []string{"positions[0].amount"}},
		{"short position id", func(p *ProjectPayload) { p.Positions[0].ID = "x" }, []string{"positions[0].id"}},
		{"negative tag id", func(p *ProjectPayload) { p.Tags[1].TagID = -4 }, []string{"tags[1].tagId"}},
		{"missing expertise", func(p *ProjectPayload) { p.Technologies[0].ExpertiseID = 0 }, []string{"technologies[0].expertiseId"}},
		{"unpaired", func(p *ProjectPayload) { p.Technologies = p.Technologies[:1] }, []string{"technologies"}},
		{"missing positions", func(p *ProjectPayload) { p.Positions = nil }, []string{"positions"}},
		{"several at once", func(p *ProjectPayload) {
			p.Abstract = ""
			p.Positions[0].Amount = -1
		}, []string{"abstract", "positions[0].amount"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)

			err := v.Validate(p)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.ErrorAs(t, err, &verr)
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
			assert.Len(t, verr.Fields, len(tt.wantFields))
		})
	}
}

func TestValidateUser(t *testing.T) {
	v := New()
	hash := "$2a$10$" + strings.Repeat("a", 53)
	bad := "not-an-email"

	tests := []struct {
		name      string
		payload   UserPayload
		wantField string
	}{
		{"valid", UserPayload{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: hash}, ""},
		{"plaintext password", UserPayload{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: "hunter2"}, "password"},
		{"bad email", UserPayload{Name: "Ada", Lastname: "Lovelace", Email: "ada", Password: hash}, "email"},
		{"bad department email", UserPayload{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: hash, DepartmentEmail: &bad}, "departmentEmail"},
		{"blank lastname", UserPayload{Name: "Ada", Lastname: "  ", Email: "ada@example.com", Password: hash}, "lastname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "is required", "a": "is required"}}
	assert.Equal(t, "validation failed: field 'a': is required; field 'b': is required", err.Error())
}
