package model

type ConvertResponse struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Staves int      `json:"staves"`
	Tokens []string `json:"tokens"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
