package server

import (
	"PromptLib/handler"
)

type Handlers struct {
	Analyze *handler.Analyze
	Gallery *handler.Gallery
	Admin   *handler.Admin
	Auth    *handler.Auth
	Api     *handler.Api
}
