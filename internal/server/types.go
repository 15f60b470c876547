package server

import "github.com/aryannaik/arcade-search/internal/paginate"

type resultDTO struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Label   string `json:"label"`
	Slug    string `json:"slug"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Score   int    `json:"score"`
}

type searchResponse struct {
	Query      string             `json:"query"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalItems int                `json:"totalItems"`
	TotalPages int                `json:"totalPages"`
	Results    []resultDTO        `json:"results"`
	Controls   []paginate.Control `json:"controls"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
