package models

// CategorySet maps a category name (Skills, Education, Experience) to
// its ordered list of labels. The whole set is replaced on update.
type CategorySet map[string][]string
