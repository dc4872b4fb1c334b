package seeds

import (
	"log"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
)

func strPtr(s string) *string { return &s }

// SeedUsers inserts a small set of demo accounts, skipping emails that
// already exist so the seeder can be re-run.
func SeedUsers() ([]models.User, error) {
	log.Println("Seeding users...")

	demo := []models.User{
		{Name: "Ana Souza", Email: "ana@exemplo.com", Phone: strPtr("+55 11 98888-0001"), Location: strPtr("São Paulo")},
		{Name: "Bruno Lima", Email: "bruno@exemplo.com", Phone: strPtr("+55 21 97777-0002"), Location: strPtr("Rio de Janeiro")},
		{Name: "Carla Mendes", Email: "carla@exemplo.com", Location: strPtr("Belo Horizonte")},
	}

	users := make([]models.User, 0, len(demo))
	for _, u := range demo {
		var existing models.User
		if err := database.DB.Where("email = ?", u.Email).Order("id asc").First(&existing).Error; err == nil {
			users = append(users, existing)
			continue
		}
		if err := database.DB.Create(&u).Error; err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	log.Printf("Seeded %d users", len(users))
	return users, nil
}
