package model

type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
