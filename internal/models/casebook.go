package models

// Casebook is the seed data of one case: the mansion layout and which suspect every clue points to.
type Casebook struct {
	ID           string        `yaml:"id"           db:"id"`
	Title        string        `yaml:"title"        db:"title"`
	Intro        string        `yaml:"intro"        db:"intro"`
	Root         string        `yaml:"root"         db:"root"`
	Rooms        []RoomSpec    `yaml:"rooms"        db:"-"`
	Associations []Association `yaml:"associations" db:"-"`
}

// RoomSpec describes a room and the names of the rooms behind its left and right exits.
type RoomSpec struct {
	Name  string `yaml:"name"  db:"name"`
	Clue  string `yaml:"clue"  db:"clue"`
	Left  string `yaml:"left"  db:"left_room"`
	Right string `yaml:"right" db:"right_room"`
}

// Association points a clue at a suspect.
type Association struct {
	Clue    string `yaml:"clue"    db:"clue"`
	Suspect string `yaml:"suspect" db:"suspect"`
}

// CasebookSummary is a casebook listing entry.
type CasebookSummary struct {
	ID    string `db:"id"`
	Title string `db:"title"`
	Rooms int    `db:"rooms"`
}
