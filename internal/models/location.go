package models

// Country/State/City — справочник локаций.
type Country struct {
	ID   string
	Name string
	ISO2 string
}

type State struct {
	ID        string
	CountryID string
	Name      string
}

type City struct {
	ID        string
	CountryID string
	StateID   string
	Name      string
}
