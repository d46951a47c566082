package postgres

// gorm models for the recruitment schema. Table and column names follow the
// original relational schema; foreign keys are plain columns set explicitly
// by the repositories, never through gorm association helpers.

type roleModel struct {
	RoleID int    `gorm:"column:role_id;primaryKey"`
	Name   string `gorm:"column:name"`
}

func (roleModel) TableName() string { return "role" }

type personModel struct {
	PersonID int    `gorm:"column:person_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name"`
	Surname  string `gorm:"column:surname"`
	Pnr      string `gorm:"column:pnr"`
	Email    string `gorm:"column:email"`
	Password string `gorm:"column:password"`
	RoleID   int    `gorm:"column:role_id"`
	Username string `gorm:"column:username;uniqueIndex"`
}

func (personModel) TableName() string { return "person" }

type competenceModel struct {
	CompetenceID int    `gorm:"column:competence_id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name"`
}

func (competenceModel) TableName() string { return "competence" }

type competenceNameModel struct {
	CompetenceNameID int    `gorm:"column:competence_name_id;primaryKey;autoIncrement"`
	CompetenceID     int    `gorm:"column:competence_id;index"`
	Language         string `gorm:"column:language"`
	Name             string `gorm:"column:name"`
}

func (competenceNameModel) TableName() string { return "competence_name" }

type availabilityModel struct {
	AvailabilityID int    `gorm:"column:availability_id;primaryKey;autoIncrement"`
	PersonID       int    `gorm:"column:person_id;index"`
	FromDate       string `gorm:"column:from_date;type:date"`
	ToDate         string `gorm:"column:to_date;type:date"`
}

func (availabilityModel) TableName() string { return "availability" }

type competenceProfileModel struct {
	CompetenceProfileID int     `gorm:"column:competence_profile_id;primaryKey;autoIncrement"`
	PersonID            int     `gorm:"column:person_id;index"`
	CompetenceID        int     `gorm:"column:competence_id"`
	YearsOfExperience   float64 `gorm:"column:years_of_experience;type:decimal(4,2)"`
}

func (competenceProfileModel) TableName() string { return "competence_profile" }
