package model

type Note struct {
	ID          string   `json:"id"`
	AccessType  string   `json:"access_type"`
	URI         string   `json:"uri"`
	ModDate     string   `json:"mod_date"`
	AddDate     string   `json:"add_date"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
