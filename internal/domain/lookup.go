package domain

type Category struct {
	ID          int64  `json:"id_category"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type Priority struct {
	ID          int64  `json:"id_priority"`
	Description string `json:"description"`
}

type ClosureType struct {
	ID          int64  `json:"id_closure_type"`
	Description string `json:"description"`
}
