package domain

// Province is the top level of the geographic hierarchy.
type Province struct {
	ID   int64
	Name string
}

// Canton belongs to a Province.
type Canton struct {
	ID         int64
	Name       string
	ProvinceID int64
}

// District belongs to a Canton. Legends are located in districts.
type District struct {
	ID       int64
	Name     string
	CantonID int64
}
