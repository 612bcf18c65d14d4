package dto

// CharacterInfo 角色信息
type CharacterInfo struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// PlanetInfo 星球信息
type PlanetInfo struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Climate *string `json:"climate"`
	Terrain *string `json:"terrain"`
}

// VehicleInfo 载具信息
type VehicleInfo struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Model *string `json:"model"`
	Price *int64  `json:"price"`
}
