package dao

import (
	"Engage/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewContentDAO,
	NewContentTagDAO,
	NewCategoryDAO,
	cache.NewCategoryStorage,
)
