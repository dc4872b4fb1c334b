package models

import "time"

// Chat is a negotiation thread between the item's donor and one requester.
// The composite unique index makes the find-or-create in the handler safe
// under concurrent requests: at most one row can exist per triple.
type Chat struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClothingItemID uint      `gorm:"not null;uniqueIndex:idx_chats_item_donor_requester" json:"clothing_item_id"`
	DonorID        uint      `gorm:"not null;uniqueIndex:idx_chats_item_donor_requester" json:"donor_id"`
	RequesterID    uint      `gorm:"not null;uniqueIndex:idx_chats_item_donor_requester" json:"requester_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatView is the inbox projection: a chat enriched with the item title
// and both participant names. Deciding which name is "the other person"
// is left to the client, which knows the viewing user.
type ChatView struct {
	ID             uint      `json:"id"`
	ClothingItemID uint      `json:"clothing_item_id"`
	DonorID        uint      `json:"donor_id"`
	RequesterID    uint      `json:"requester_id"`
	CreatedAt      time.Time `json:"created_at"`
	ItemTitle      string    `json:"item_title"`
	DonorName      string    `json:"donor_name"`
	RequesterName  string    `json:"requester_name"`
}
