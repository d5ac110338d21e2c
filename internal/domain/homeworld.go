package domain

type Homeworld struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Climate        string `db:"climate"`
	Diameter       string `db:"diameter"`
	Gravity        string `db:"gravity"`
	OrbitalPeriod  string `db:"orbital_period"`
	Population     string `db:"population"`
	RotationPeriod string `db:"rotation_period"`
	SurfaceWater   string `db:"surface_water"`
	Terrain        string `db:"terrain"`
	URL            string `db:"url"`
}

type HomeworldFields struct {
	Name           string `db:"name" json:"name" validate:"required,max=250"`
	Climate        string `db:"climate" json:"climate"`
	Diameter       string `db:"diameter" json:"diameter"`
	Gravity        string `db:"gravity" json:"gravity"`
	OrbitalPeriod  string `db:"orbital_period" json:"orbital_period"`
	Population     string `db:"population" json:"population"`
	RotationPeriod string `db:"rotation_period" json:"rotation_period"`
	SurfaceWater   string `db:"surface_water" json:"surface_water"`
	Terrain        string `db:"terrain" json:"terrain"`
	URL            string `db:"url" json:"url"`
}
