package dto

// CreateAssetRequest là DTO cho yêu cầu tạo thiết bị
type CreateAssetRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	SerialNumber   string `json:"serialNumber" binding:"required"`
	Category       string `json:"category"`
	PurchaseDate   string `json:"purchaseDate"`
	WarrantyExpiry string `json:"warrantyExpiry"`
	PhotoURL       string `json:"photoUrl"`
	LocationID     uint   `json:"locationId" binding:"required"`
	HotelID        uint   `json:"hotelId" binding:"required"`
}

// UpdateAssetRequest là DTO cho yêu cầu cập nhật thiết bị
type UpdateAssetRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photoUrl"`
	LocationID  *uint  `json:"locationId"`
}

// ChangeAssetStatusRequest là DTO cho yêu cầu đổi trạng thái thiết bị
type ChangeAssetStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status" binding:"required"`
}
