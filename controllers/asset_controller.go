package controllers

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"facility/config"
	"facility/constants"
	"facility/dto"
	"facility/models"
	"facility/response"
	"facility/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// GetAllAssets lấy danh sách thiết bị có phân trang và lọc
func GetAllAssets(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusStr := c.Query("status")
	hotelStr := c.Query("hotelId")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Asset{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}
	if hotelStr != "" {
		if hotelID, err := strconv.Atoi(hotelStr); err == nil {
			tx = tx.Where("hotel_id = ?", hotelID)
		}
	}

	var totalAssets int64
	if err := tx.Count(&totalAssets).Error; err != nil {
		response.ServerError(c)
		return
	}

	var assets []models.Asset
	if err := tx.Preload("Location").Preload("Hotel").Order("updated_at desc").
		Offset(page * limit).Limit(limit).Find(&assets).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, "assets", assets, page, limit, int(totalAssets))
}

// CreateAsset tạo thiết bị mới và cấp mã QR
func CreateAsset(c *gin.Context) {
	var request dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	asset := models.Asset{
		Name:         request.Name,
		Description:  request.Description,
		SerialNumber: request.SerialNumber,
		Category:     request.Category,
		PhotoURL:     request.PhotoURL,
		LocationID:   request.LocationID,
		HotelID:      request.HotelID,
		IsActive:     true,
	}

	if request.PurchaseDate != "" {
		purchaseDate, err := time.Parse("2006-01-02", request.PurchaseDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày mua không hợp lệ")
			return
		}
		asset.PurchaseDate = &purchaseDate
	}
	if request.WarrantyExpiry != "" {
		warrantyExpiry, err := time.Parse("2006-01-02", request.WarrantyExpiry)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày hết bảo hành không hợp lệ")
			return
		}
		asset.WarrantyExpiry = &warrantyExpiry
	}

	if err := validator.ValidateAsset(&asset); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	asset.QRCodeURL = buildAssetQRCodeURL(asset.SerialNumber)

	if err := config.DB.Create(&asset).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "asset", asset, "Tạo thiết bị thành công")
}

// buildAssetQRCodeURL cấp URL ảnh QR trỏ về định danh thiết bị
func buildAssetQRCodeURL(serialNumber string) string {
	data := url.QueryEscape("facility://assets/" + serialNumber)
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=%s", data)
}

func GetAssetDetail(c *gin.Context) {
	var asset models.Asset
	if err := config.DB.Preload("Location").Preload("Hotel").
		Where("id = ?", c.Param("id")).First(&asset).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, asset)
}

// UpdateAsset cập nhật thông tin thiết bị
func UpdateAsset(c *gin.Context) {
	var asset models.Asset
	var request dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&asset, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		asset.Name = request.Name
	}
	if request.Description != "" {
		asset.Description = request.Description
	}
	if request.Category != "" {
		asset.Category = request.Category
	}
	if request.PhotoURL != "" {
		asset.PhotoURL = request.PhotoURL
	}
	if request.LocationID != nil {
		asset.LocationID = *request.LocationID
	}
	asset.UpdatedAt = time.Now()

	if err := validator.ValidateAsset(&asset); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&asset).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "asset", asset, "Cập nhật thiết bị thành công")
}

// ChangeAssetStatus đổi trạng thái thiết bị (hoạt động/bảo trì/ngưng dùng)
func ChangeAssetStatus(c *gin.Context) {
	var request dto.ChangeAssetStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status < constants.AssetStatusOperational || request.Status > constants.AssetStatusRetired {
		response.BadRequest(c, "Trạng thái thiết bị không hợp lệ")
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	asset.Status = request.Status
	if err := config.DB.Save(&asset).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "asset", asset, "Đổi trạng thái thiết bị thành công")
}

func normalizeSearchInput(input string) string {
	input = strings.TrimSpace(norm.NFC.String(input))
	return strings.ToLower(unidecode.Unidecode(input))
}

// createAssetMatcher tạo đối tượng closestmatch cho danh sách tên thiết bị
func createAssetMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

type assetSearchResult struct {
	asset models.Asset
	score float64
}

// SearchAssets tìm thiết bị theo tên gần đúng (bỏ dấu, không phân biệt hoa thường)
func SearchAssets(c *gin.Context) {
	query := normalizeSearchInput(c.Query("query"))
	if query == "" {
		response.BadRequest(c, "Thiếu tham số query")
		return
	}

	tx := config.DB.Where("is_active = ?", true)
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		if hotelID, err := strconv.Atoi(hotelStr); err == nil {
			tx = tx.Where("hotel_id = ?", hotelID)
		}
	}

	var assets []models.Asset
	if err := tx.Preload("Location").Find(&assets).Error; err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(assets))
	for _, asset := range assets {
		names = append(names, normalizeSearchInput(asset.Name))
	}
	matcher := createAssetMatcher(names)
	bestName := matcher.Closest(query)

	var results []assetSearchResult
	for _, asset := range assets {
		name := normalizeSearchInput(asset.Name)
		score := calculateSimilarity(name, query)
		if strings.Contains(name, query) {
			score += 0.3
		}
		if name == bestName {
			score += 0.2
		}
		if score >= 0.3 {
			results = append(results, assetSearchResult{asset: asset, score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if len(results) > 10 {
		results = results[:10]
	}

	matched := make([]models.Asset, 0, len(results))
	for _, r := range results {
		matched = append(matched, r.asset)
	}

	response.Success(c, gin.H{"assets": matched})
}
