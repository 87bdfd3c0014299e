package types

// CommentAuthorResponse là DTO cho thông tin người viết bình luận
type CommentAuthorResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
