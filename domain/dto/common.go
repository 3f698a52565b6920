package dto

// PageRequest is embedded by list filter requests.
type PageRequest struct {
	Page    int `query:"page" validate:"omitempty,min=1"`
	PerPage int `query:"per_page" validate:"omitempty,min=1,max=100"`
}

const DefaultPerPage = 15

func (p PageRequest) PageOrDefault() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p PageRequest) PerPageOrDefault() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	return p.PerPage
}

func (p PageRequest) Offset() int {
	return (p.PageOrDefault() - 1) * p.PerPageOrDefault()
}
