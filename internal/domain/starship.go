package domain

type Starship struct {
	ID                   int64  `db:"id"`
	Name                 string `db:"name"`
	Model                string `db:"model"`
	Manufacturer         string `db:"manufacturer"`
	StarshipClass        string `db:"starship_class"`
	CostInCredits        string `db:"cost_in_credits"`
	Length               string `db:"length"`
	Crew                 string `db:"crew"`
	Passengers           string `db:"passengers"`
	MaxAtmospheringSpeed string `db:"max_atmosphering_speed"`
	HyperdriveRating     string `db:"hyperdrive_rating"`
	CargoCapacity        string `db:"cargo_capacity"`
	URL                  string `db:"url"`
}

type StarshipFields struct {
	Name                 string `db:"name" json:"name" validate:"required,max=250"`
	Model                string `db:"model" json:"model"`
	Manufacturer         string `db:"manufacturer" json:"manufacturer"`
	StarshipClass        string `db:"starship_class" json:"starship_class"`
	CostInCredits        string `db:"cost_in_credits" json:"cost_in_credits"`
	Length               string `db:"length" json:"length"`
	Crew                 string `db:"crew" json:"crew"`
	Passengers           string `db:"passengers" json:"passengers"`
	MaxAtmospheringSpeed string `db:"max_atmosphering_speed" json:"max_atmosphering_speed"`
	HyperdriveRating     string `db:"hyperdrive_rating" json:"hyperdrive_rating"`
	CargoCapacity        string `db:"cargo_capacity" json:"cargo_capacity"`
	URL                  string `db:"url" json:"url"`
}
