package handler

import (
	"PromptLib/models"
	"PromptLib/pkg/imageurl"
	"PromptLib/pkg/utils"
	"PromptLib/service"
	"PromptLib/types"
	"html/template"
	"net/url"
)

const cardTagLimit = 2

type categoryView struct {
	Name string
	Href string
}

type cardView struct {
	ID          int64
	ImageURL    string
	AspectRatio types.AspectRatio
	Style       template.CSS
	Summary     string
	Original    string
	Tags        []string
}

type detailView struct {
	Title          string
	ImageURL       string
	AspectRatio    types.AspectRatio
	GenerationType types.GenerationType
	Summary        string
	Original       string
	Translated     string
	OriginalLang   string
	TranslatedLang string
	Tags           []string
	CreatedAt      string
}

type galleryView struct {
	Title      string
	Category   string
	Query      string
	Total      int
	Categories []categoryView
	Cards      []cardView
}

func newGalleryView(g *service.Gallery, category, query string) *galleryView {
	filtered := service.FilterPrompts(g.Prompts, category, query)
	v := &galleryView{
		Title:    "Gallery",
		Category: category,
		Query:    query,
		Total:    len(filtered),
		Cards:    make([]cardView, 0, len(filtered)),
	}
	for _, name := range g.Categories() {
		q := url.Values{}
		if name != service.CategoryAll {
			q.Set("category", name)
		}
		if query != "" {
			q.Set("q", query)
		}
		href := "/"
		if len(q) > 0 {
			href += "?" + q.Encode()
		}
		v.Categories = append(v.Categories, categoryView{Name: name, Href: href})
	}
	for _, p := range filtered {
		v.Cards = append(v.Cards, newCardView(p))
	}
	return v
}

func newCardView(p *models.Prompt) cardView {
	tags := []string(p.Tags)
	if len(tags) > cardTagLimit {
		tags = tags[:cardTagLimit]
	}
	c := cardView{
		ID:          p.ID,
		AspectRatio: p.AspectRatio,
		Style:       template.CSS("aspect-ratio: " + p.AspectRatio.CSS()),
		Summary:     p.Summary,
		Original:    p.OriginalPrompt,
		Tags:        tags,
	}
	if p.ImageURL != nil {
		// 卡片直接用原图，变换参数只用于详情大图
		c.ImageURL = *p.ImageURL
	}
	return c
}

func newDetailView(p *models.Prompt) *detailView {
	v := &detailView{
		Title:          "Prompt",
		AspectRatio:    p.AspectRatio,
		GenerationType: p.GenerationType,
		Summary:        p.Summary,
		Original:       p.OriginalPrompt,
		Translated:     p.TranslatedPrompt,
		OriginalLang:   "English",
		TranslatedLang: "Chinese",
		Tags:           p.Tags,
		CreatedAt:      p.CreatedAt.Format("2006-01-02"),
	}
	if utils.ContainsHan(p.OriginalPrompt) {
		v.OriginalLang, v.TranslatedLang = "Chinese", "English"
	}
	if p.Summary != "" {
		v.Title = p.Summary
	}
	if p.ImageURL != nil {
		v.ImageURL = imageurl.Optimized(*p.ImageURL, imageurl.DetailWidth)
	}
	return v
}
