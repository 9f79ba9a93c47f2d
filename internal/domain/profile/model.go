package profile

import (
	"strings"
	"time"
)

// Breed agrupa las razas ofrecidas en el formulario. El campo es texto libre.
type Breed string

const (
	BreedLabrador         Breed = "Labrador"
	BreedGoldenRetriever  Breed = "Golden Retriever"
	BreedGermanShepherd   Breed = "German Shepherd"
	BreedBulldog          Breed = "Bulldog"
	BreedPoodle           Breed = "Poodle"
	BreedSiamese          Breed = "Siamese"
	BreedPersian          Breed = "Persian"
	BreedMaineCoon        Breed = "Maine Coon"
	BreedBritishShorthair Breed = "British Shorthair"
	BreedOther            Breed = "Other"
)

// DefaultBreed se usa cuando se guarda un perfil sin raza.
const DefaultBreed = BreedLabrador

var Breeds = []Breed{
	BreedLabrador,
	BreedGoldenRetriever,
	BreedGermanShepherd,
	BreedBulldog,
	BreedPoodle,
	BreedSiamese,
	BreedPersian,
	BreedMaineCoon,
	BreedBritishShorthair,
	BreedOther,
}

// Profile es el perfil de la única mascota de un usuario.
type Profile struct {
	Name   string `json:"name" validate:"required"`
	Breed  string `json:"breed"`
	Age    int    `json:"age" validate:"gte=0"`
	Health string `json:"health"`
}

// Complete: nombre y edad > 0. Es lo que distingue usuario nuevo de recurrente.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" && p.Age > 0
}

// Record es el valor guardado bajo profile-<email>.
type Record struct {
	Email     string    `json:"email" validate:"required,email"`
	Pet       Profile   `json:"pet"`
	UpdatedAt time.Time `json:"updatedAt"`
}
