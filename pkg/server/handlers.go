package server

import (
	"Engage/handler"
)

type Handlers struct {
	Content  *handler.Content
	Category *handler.Category
	Health   *handler.Health
}
