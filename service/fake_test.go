package service

import (
	"PromptLib/models"
	"PromptLib/types"
	"context"
	"errors"
	"strings"
	"sync"
)

type fakeAnalyzer struct {
	result *types.AnalysisResult
	calls  []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (*types.AnalysisResult, error) {
	f.calls = append(f.calls, text)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if f.result == nil {
		return Fallback(text), nil
	}
	return f.result, nil
}

type fakeStorage struct {
	uploadErr error
	uploads   [][]byte
	deleted   []string
}

func (f *fakeStorage) UploadImage(_ context.Context, payload []byte) (*types.StoredObject, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, payload)
	key := "1700000000000-abc123.jpg"
	return &types.StoredObject{Key: key, URL: "https://prompts.oss.example.com/" + key}, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakePromptStore struct {
	mu        sync.Mutex
	insertErr error
	listErr   error
	prompts   []*models.Prompt
	nextID    int64
}

func (f *fakePromptStore) ListPrompts(context.Context) ([]*models.Prompt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Prompt, 0, len(f.prompts))
	for i := len(f.prompts) - 1; i >= 0; i-- {
		out = append(out, f.prompts[i])
	}
	return out, nil
}

func (f *fakePromptStore) InsertPrompt(_ context.Context, p *models.Prompt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	p.ID = f.nextID
	f.prompts = append(f.prompts, p)
	return nil
}

func (f *fakePromptStore) FindPrompt(_ context.Context, id int64) (*models.Prompt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.prompts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

type fakeTagStore struct {
	listErr error
	tags    []*models.Tag
	inserts int
}

func (f *fakeTagStore) ListTags(context.Context) ([]*models.Tag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tags, nil
}

func (f *fakeTagStore) InsertTag(_ context.Context, name string) (*models.Tag, error) {
	f.inserts++
	tag := &models.Tag{ID: int64(len(f.tags) + 1), Name: name}
	f.tags = append(f.tags, tag)
	return tag, nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	return f.admins[strings.ToLower(email)], nil
}

func (f *fakeAdminStore) CreateAdmin(_ context.Context, email, hash string) (*models.Admin, error) {
	if f.admins == nil {
		f.admins = map[string]*models.Admin{}
	}
	admin := &models.Admin{ID: int64(len(f.admins) + 1), Email: strings.ToLower(email), Password: hash}
	f.admins[admin.Email] = admin
	return admin, nil
}
