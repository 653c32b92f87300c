package domain

// Models 需要建表的全部模型
func Models() []any {
	return []any{&User{}, &LearningItem{}, &Follow{}}
}
