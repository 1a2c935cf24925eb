package handler

import (
	"PromptLib/config"
	"PromptLib/models"
	"PromptLib/pkg/jwt"
	"PromptLib/service"
	"PromptLib/types"
	"PromptLib/web"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

const goodToken = "good-token"

type fakeAuth struct {
	loginErr error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*types.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if email != "admin@example.com" || password != "secret" {
		return nil, service.ErrInvalidCredentials
	}
	return &types.LoginResponse{Token: goodToken, ExpiresIn: 3600}, nil
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

func (f *fakeAuth) Verify(_ context.Context, token string) (*jwt.Claims, error) {
	if token != goodToken {
		return nil, service.ErrUnauthorized
	}
	return &jwt.Claims{AdminID: 1, SessionID: "sid"}, nil
}

func (f *fakeAuth) CreateAdmin(context.Context, string, string) (*models.Admin, error) {
	return nil, errors.New("not implemented")
}

type fakeGallery struct {
	gallery *service.Gallery
	err     error
}

func (f *fakeGallery) Load(context.Context) (*service.Gallery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gallery, nil
}

func (f *fakeGallery) Find(_ context.Context, id int64) (*models.Prompt, error) {
	if f.gallery != nil {
		for _, p := range f.gallery.Prompts {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, errors.New("record not found")
}

type fakePrompts struct {
	err   error
	tags  *fakeTags
	calls []*types.CreatePromptInput
}

func (f *fakePrompts) CreatePrompt(_ context.Context, in *types.CreatePromptInput) (*models.Prompt, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	if strings.TrimSpace(in.Text) == "" && in.Image == nil {
		return nil, service.ErrEmptyEntry
	}
	tags := append([]string{}, in.Tags...)
	if in.NewTag != "" && f.tags != nil {
		tag, err := f.tags.AddTag(context.Background(), in.NewTag)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag.Name)
	}
	return &models.Prompt{ID: 99, OriginalPrompt: in.Text, Tags: tags}, nil
}

type fakeTags struct {
	tags []*models.Tag
}

func (f *fakeTags) ListTags(context.Context) ([]*models.Tag, error) { return f.tags, nil }

func (f *fakeTags) AddTag(_ context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, service.ErrEmptyTagName
	}
	for _, t := range f.tags {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	tag := &models.Tag{ID: int64(len(f.tags) + 1), Name: name}
	f.tags = append(f.tags, tag)
	return tag, nil
}

type fakeAnalyzer struct {
	body []byte
	err  error
}

func (f *fakeAnalyzer) Analyze(context.Context, string) ([]byte, error) {
	return f.body, f.err
}

type testDeps struct {
	auth     *fakeAuth
	gallery  *fakeGallery
	prompts  *fakePrompts
	tags     *fakeTags
	analyzer *fakeAnalyzer
	llm      *config.LLMConfig
}

func newTestDeps() *testDeps {
	tags := &fakeTags{}
	return &testDeps{
		auth:     &fakeAuth{},
		gallery:  &fakeGallery{gallery: &service.Gallery{}},
		prompts:  &fakePrompts{tags: tags},
		tags:     tags,
		analyzer: &fakeAnalyzer{},
		llm:      &config.LLMConfig{APIKey: "key"},
	}
}

func (d *testDeps) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	(&Analyze{Config: d.llm, Analyzer: d.analyzer}).RegisterRouter(r)
	(&Gallery{Gallery: d.gallery}).RegisterRouter(r)
	(&Auth{Jwt: &config.Jwt{Secret: "s", Expire: 3600}, AuthService: d.auth}).RegisterRouter(r)
	(&Admin{AuthService: d.auth, PromptService: d.prompts, TagService: d.tags}).RegisterRouter(r)
	(&Api{AuthService: d.auth, GalleryService: d.gallery, PromptService: d.prompts, TagService: d.tags}).RegisterRouter(r)
	return r
}
