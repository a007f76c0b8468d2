package model

type AccessType int

const (
	AccessPrivate AccessType = 0
	AccessPublic  AccessType = 1
)

type Link struct {
	AccessType string   `json:"access_type"`
	URL        string   `json:"url"`
	ModDate    string   `json:"mod_date"`
	AddDate    string   `json:"add_date"`
	Title      string   `json:"title"`
	Nickname   string   `json:"nickname"`
	Note       string   `json:"note"`
	Tags       []string `json:"tags"`
}
