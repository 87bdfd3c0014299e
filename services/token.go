package services

import (
	"encoding/json"
	"strings"

	"facility/errors"

	"github.com/dgrijalva/jwt-go"
)

// SessionIdentity là danh tính do hệ thống phát hành phiên bên ngoài cung cấp
type SessionIdentity struct {
	UserID  uint
	Role    int
	HotelID uint
}

// GetIdentityFromToken lấy userID, role và hotelID từ token của identity provider
func GetIdentityFromToken(tokenString string) (*SessionIdentity, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token, chữ ký do identity provider chịu trách nhiệm
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	identity := &SessionIdentity{
		UserID: uint(userID),
		Role:   int(role),
	}

	// hotelid là claim tùy chọn
	if hotelID, okHotel := userInfo["hotelid"].(float64); okHotel {
		identity.HotelID = uint(hotelID)
	}

	return identity, nil
}

// GetIDFromToken lấy userID từ token
func GetIDFromToken(tokenString string) (uint, error) {
	identity, err := GetIdentityFromToken(tokenString)
	if err != nil {
		return 0, err
	}
	return identity.UserID, nil
}
