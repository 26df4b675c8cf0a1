package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thereayou/portfolio-backend/internal/models"
)

// MemStore is an in-memory Store. It backs handler tests and works as a
// drop-in for environments without postgres.
type MemStore struct {
	mu       sync.RWMutex
	users    map[string]models.User
	projects map[string]models.Project
	skills   map[string]models.Skill
	messages map[string]models.ContactMessage
	about    *models.AboutInfo
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[string]models.User),
		projects: make(map[string]models.Project),
		skills:   make(map[string]models.Skill),
		messages: make(map[string]models.ContactMessage),
	}
}

var _ Store = (*MemStore)(nil)

func (s *MemStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID.String()] = *user
	return nil
}

func (s *MemStore) ListProjects() ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemStore) GetProject(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemStore) CreateProject(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	s.projects[project.ID.String()] = *project
	return nil
}

func (s *MemStore) UpdateProject(id string, upd ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	upd.Apply(&p)
	s.projects[id] = p
	return &p, nil
}

func (s *MemStore) DeleteProject(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

func (s *MemStore) ListSkills() ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemStore) GetSkill(id string) (*models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sk, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sk, nil
}

func (s *MemStore) CreateSkill(skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	s.skills[skill.ID.String()] = *skill
	return nil
}

func (s *MemStore) UpdateSkill(id string, upd SkillUpdate) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sk, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	upd.Apply(&sk)
	s.skills[id] = sk
	return &sk, nil
}

func (s *MemStore) DeleteSkill(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.skills[id]; !ok {
		return false, nil
	}
	delete(s.skills, id)
	return true, nil
}

func (s *MemStore) ListContactMessages() ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemStore) CreateContactMessage(msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages[msg.ID.String()] = *msg
	return nil
}

func (s *MemStore) MarkMessageRead(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return false, nil
	}
	m.Read = true
	s.messages[id] = m
	return true, nil
}

func (s *MemStore) DeleteContactMessage(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return false, nil
	}
	delete(s.messages, id)
	return true, nil
}

func (s *MemStore) GetAbout() (*models.AboutInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.about == nil {
		return nil, ErrNotFound
	}
	info := *s.about
	return &info, nil
}

func (s *MemStore) UpsertAbout(info *models.AboutInfo) (*models.AboutInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info.ID = models.AboutInfoID
	info.UpdatedAt = time.Now()
	stored := *info
	s.about = &stored
	return info, nil
}
