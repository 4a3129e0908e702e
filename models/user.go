package models

// User represents a client account that browses and books goalkeepers.
// Favorites holds goalkeeper IDs with set semantics; a re-added favorite may
// come back appended rather than in its original position.
type User struct {
	ID        int    `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	City      string `bson:"city" json:"city"`
	Favorites []int  `bson:"favorites" json:"favorites"`
}

// HasFavorite reports whether the given goalkeeper is in the user's favorites.
func (u *User) HasFavorite(goalkeeperID int) bool {
	for _, id := range u.Favorites {
		if id == goalkeeperID {
			return true
		}
	}
	return false
}
