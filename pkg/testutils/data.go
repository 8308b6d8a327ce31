package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/entitylens/entitylens/pkg/models"
)

// FakeCorpus generates n distinct sentences, each mentioning a generated
// person and city so a stub extractor has something to find.
func FakeCorpus(n int) ([]string, map[string][]models.Entity) {
	texts := make([]string, n)
	entities := make(map[string][]models.Entity, n)

	for i := 0; i < n; i++ {
		person := gofakeit.Name()
		city := gofakeit.City()
		text := fmt.Sprintf("%s visited %s last year. (%d)", person, city, i)
		texts[i] = text
		entities[text] = []models.Entity{
			SpanEntity(person, "PERSON"),
			SpanEntity(city, "GPE"),
		}
	}

	return texts, entities
}
