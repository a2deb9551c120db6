package models

// All 需要建表的模型，顺序即外键依赖顺序
func All() []any {
	return []any{
		&Author{},
		&Content{},
		&Tag{},
		&Category{},
		&ContentTag{},
	}
}
