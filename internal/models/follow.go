package models

// Follow is a directed follower -> followee edge between two users.
type Follow struct {
	FollowerID     uint   `json:"follower_id" gorm:"column:follower_id;primaryKey"`
	FollowerUserID string `json:"follower_user_id" gorm:"column:follower_user_id;not null;index"`
	FolloweeUserID string `json:"followee_user_id" gorm:"column:followee_user_id;not null;index"`
}

func (Follow) TableName() string {
	return "followers"
}

type FollowRequest struct {
	FollowerUsername string `json:"followerUsername" binding:"required"`
	FolloweeUsername string `json:"followeeUsername" binding:"required"`
}
