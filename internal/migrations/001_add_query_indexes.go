package migrations

import "gorm.io/gorm"

// Migration001AddQueryIndexes adds indexes backing the read models:
// the inbox query filters chats on donor_id OR requester_id, the thread
// query orders messages by (created_at, id) within a chat, and the feed
// filters on availability ordered by recency.
func Migration001AddQueryIndexes() Migration {
	return Migration{
		ID:   "001_add_query_indexes",
		Name: "Add indexes for inbox, thread and feed queries",
		Up: func(db *gorm.DB) error {
			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_chats_donor_id ON chats(donor_id)",
				"CREATE INDEX IF NOT EXISTS idx_chats_requester_id ON chats(requester_id)",
				"CREATE INDEX IF NOT EXISTS idx_messages_chat_created ON messages(chat_id, created_at, id)",
				"CREATE INDEX IF NOT EXISTS idx_items_available_created ON clothing_items(is_available, created_at DESC)",
			}
			for _, idx := range indexes {
				if err := db.Exec(idx).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			indexes := []string{
				"DROP INDEX IF EXISTS idx_chats_donor_id",
				"DROP INDEX IF EXISTS idx_chats_requester_id",
				"DROP INDEX IF EXISTS idx_messages_chat_created",
				"DROP INDEX IF EXISTS idx_items_available_created",
			}
			for _, idx := range indexes {
				if err := db.Exec(idx).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
