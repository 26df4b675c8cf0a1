package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/portfolio-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMemStore_ProjectOrdering(t *testing.T) {
	s := NewMemStore()

	for _, p := range []models.Project{
		{Title: "third", Technologies: []string{"Go"}, Order: 3},
		{Title: "first", Technologies: []string{"Go"}, Order: 1},
		{Title: "second", Technologies: []string{"Go"}, Order: 2},
	} {
		p := p
		require.NoError(t, s.CreateProject(&p))
	}

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
	assert.Equal(t, "third", projects[2].Title)
}

func TestMemStore_PartialProjectUpdate(t *testing.T) {
	s := NewMemStore()

	p := models.Project{Title: "old", Description: "desc", Technologies: []string{"Go", "React"}}
	require.NoError(t, s.CreateProject(&p))

	updated, err := s.UpdateProject(p.ID.String(), ProjectUpdate{Title: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Len(t, updated.Technologies, 2)

	_, err = s.UpdateProject("missing", ProjectUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_DeleteIsIdempotent(t *testing.T) {
	s := NewMemStore()

	sk := models.Skill{Name: "Go", Category: "Backend", Proficiency: 90}
	require.NoError(t, s.CreateSkill(&sk))

	ok, err := s.DeleteSkill(sk.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteSkill(sk.ID.String())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.DeleteProject("never-existed")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_SkillUpdate(t *testing.T) {
	s := NewMemStore()

	sk := models.Skill{Name: "Go", Category: "Backend", Proficiency: 80, Order: 1}
	require.NoError(t, s.CreateSkill(&sk))

	updated, err := s.UpdateSkill(sk.ID.String(), SkillUpdate{Proficiency: intPtr(95)})
	require.NoError(t, err)
	assert.Equal(t, 95, updated.Proficiency)
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, 1, updated.Order)
}

func TestMemStore_MarkRead(t *testing.T) {
	s := NewMemStore()

	m := models.ContactMessage{Name: "Jo Lee", Email: "jo@example.com", Message: "Hello, nice site you have."}
	require.NoError(t, s.CreateContactMessage(&m))
	assert.False(t, m.Read)

	ok, err := s.MarkMessageRead(m.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	// second call succeeds and the flag stays set
	ok, err = s.MarkMessageRead(m.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	messages, err := s.ListContactMessages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	ok, err = s.MarkMessageRead("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_AboutSingleton(t *testing.T) {
	s := NewMemStore()

	_, err := s.GetAbout()
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := s.UpsertAbout(&models.AboutInfo{Name: "A", Title: "Dev", Bio: "bio"})
	require.NoError(t, err)
	assert.Equal(t, models.AboutInfoID, first.ID)

	second, err := s.UpsertAbout(&models.AboutInfo{Name: "B", Title: "Dev", Bio: "bio"})
	require.NoError(t, err)
	assert.Equal(t, models.AboutInfoID, second.ID)

	got, err := s.GetAbout()
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
}

func TestMemStore_UserLookup(t *testing.T) {
	s := NewMemStore()

	u := models.User{Username: "admin", Password: "hash", IsAdmin: true}
	require.NoError(t, s.CreateUser(&u))

	byName, err := s.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := s.GetUser(u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	// lookup is case sensitive
	_, err = s.GetUserByUsername("Admin")
	assert.ErrorIs(t, err, ErrNotFound)
}
