package entity

type Skill struct {
	BaseSimple
	Name string `db:"name"`
}
