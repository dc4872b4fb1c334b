package seeds

import (
	"log"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
)

// SeedItems lists a few donations for the demo accounts and opens one
// chat with a first message, so the inbox and thread pages have data.
func SeedItems(users []models.User) error {
	if len(users) < 3 {
		log.Println("Not enough users to seed items, skipping")
		return nil
	}

	items := []models.ClothingItem{
		{
			UserID:      users[0].ID,
			Title:       "Vestido floral",
			Description: strPtr("Usado poucas vezes, tecido leve."),
			Category:    models.CategoryDresses,
			Size:        models.SizeM,
			Condition:   models.ConditionLikeNew,
			IsAvailable: true,
		},
		{
			UserID:      users[1].ID,
			Title:       "Casaco de lã",
			Description: strPtr("Quentinho, ideal para o inverno."),
			Category:    models.CategoryOuterwear,
			Size:        models.SizeG,
			Condition:   models.ConditionGood,
			IsAvailable: true,
		},
		{
			UserID:      users[2].ID,
			Title:       "Tênis branco",
			Category:    models.CategoryShoes,
			Size:        models.SizeP,
			Condition:   models.ConditionFair,
			IsAvailable: true,
		},
	}

	for i := range items {
		var count int64
		database.DB.Model(&models.ClothingItem{}).
			Where("user_id = ? AND title = ?", items[i].UserID, items[i].Title).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	// One chat on the first item: users[1] asks users[0] about the dress.
	var item models.ClothingItem
	if err := database.DB.Where("user_id = ? AND title = ?", users[0].ID, "Vestido floral").First(&item).Error; err != nil {
		return err
	}

	chat := models.Chat{ClothingItemID: item.ID, DonorID: users[0].ID, RequesterID: users[1].ID}
	err := database.DB.
		Where("clothing_item_id = ? AND donor_id = ? AND requester_id = ?", chat.ClothingItemID, chat.DonorID, chat.RequesterID).
		First(&chat).Error
	if err != nil {
		if err := database.DB.Create(&chat).Error; err != nil {
			return err
		}
		msg := models.Message{
			ChatID:   chat.ID,
			SenderID: users[1].ID,
			Content:  "Oi! O vestido ainda está disponível?",
		}
		if err := database.DB.Create(&msg).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded items and demo chat")
	return nil
}
