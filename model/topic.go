package model

type User struct {
	Username string `json:"username"`
}

type Filter struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

type Topic struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	AddDate     string  `json:"add_date"`
	NewLinks    int     `json:"new_links"`
	Users       []User  `json:"users"`
	Filter      *Filter `json:"filter,omitempty"`
}

type Watchlist struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AddDate     string   `json:"add_date"`
	NewLinks    int      `json:"new_links"`
	Users       []User   `json:"users"`
	Filters     []Filter `json:"filters"`
}
