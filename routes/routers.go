package routes

import (
	"context"
	"net/http"

	"facility/config"
	"facility/constants"
	"facility/controllers"
	middlewares "facility/middleware"
	"facility/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	workOrderController := controllers.NewWorkOrderController(db, m)
	ppmController := controllers.NewPPMController(db, redisCli, m)
	safetyController := controllers.NewSafetyController(db)
	dashboardController := controllers.NewDashboardController(db, redisCli)
	notificationController := controllers.NewNotificationController(db, m)

	// Session websocket kết nối kèm token sẽ nhận được thông báo riêng
	m.HandleConnect(func(s *melody.Session) {
		if userID, err := services.GetIDFromToken(s.Request.URL.Query().Get("token")); err == nil && userID > 0 {
			notificationController.RegisterObserver(s, userID)
		}
	})
	m.HandleDisconnect(func(s *melody.Session) {
		if userID, err := services.GetIDFromToken(s.Request.URL.Query().Get("token")); err == nil && userID > 0 {
			notificationController.RemoveObserver(s, userID)
		}
	})

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/work-orders", workOrderController.GetWorkOrders)
	v1.POST("/work-orders", middlewares.AuthMiddleware(), workOrderController.CreateWorkOrder)
	v1.GET("/work-orders/my-requests", middlewares.AuthMiddleware(), workOrderController.GetMyRequests)
	v1.GET("/work-orders/my-recent", middlewares.AuthMiddleware(), workOrderController.GetMyRecent)
	v1.GET("/work-orders/recent", middlewares.AuthMiddleware(), workOrderController.GetRecent)
	v1.GET("/work-orders/my-open-count", middlewares.AuthMiddleware(), workOrderController.GetMyOpenCount)
	v1.GET("/work-orders/:id", workOrderController.GetWorkOrderDetail)
	v1.PUT("/work-orders/:id", workOrderController.UpdateWorkOrder)
	v1.PUT("/workOrderStatus", workOrderController.ChangeWorkOrderStatus)
	v1.POST("/work-orders/bulk", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), workOrderController.BulkAction)
	v1.GET("/work-orders/:id/comments", workOrderController.GetComments)
	v1.POST("/work-orders/:id/comments", middlewares.AuthMiddleware(), workOrderController.CreateComment)

	v1.GET("/assets", controllers.GetAllAssets)
	v1.POST("/assets", controllers.CreateAsset)
	v1.GET("/assets/search", controllers.SearchAssets)
	v1.GET("/assets/:id", controllers.GetAssetDetail)
	v1.PUT("/assetUpdate", controllers.UpdateAsset)
	v1.PUT("/assetStatus", controllers.ChangeAssetStatus)

	v1.GET("/ppm-schedules", ppmController.GetSchedules)
	v1.POST("/ppm-schedules", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), ppmController.CreateSchedule)
	v1.GET("/ppm-schedules/:id", ppmController.GetScheduleDetail)
	v1.PATCH("/ppm-schedules/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), ppmController.SetScheduleActive)
	v1.POST("/ppm-schedules/:id/generate-work-order", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), ppmController.GenerateWorkOrder)

	v1.GET("/certificates", safetyController.GetCertificates)
	v1.POST("/certificates", safetyController.CreateCertificate)
	v1.GET("/incidents", safetyController.GetIncidents)
	v1.POST("/incidents", middlewares.AuthMiddleware(), safetyController.CreateIncident)
	v1.PUT("/incidentStatus", safetyController.UpdateIncidentStatus)
	v1.GET("/training-records", safetyController.GetTrainingRecords)
	v1.POST("/training-records", safetyController.CreateTrainingRecord)

	v1.GET("/dashboard/stats", dashboardController.GetDashboardStats)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetMyNotifications)
	v1.GET("/notificationsAll", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), notificationController.GetAllNotifications)
	v1.POST("/notifyAll", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), notificationController.NotifyAll)
	v1.POST("/notifyHotel/:hotelId", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), notificationController.NotifyHotel)
	v1.POST("/notifyUser/:userID", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), notificationController.NotifyUser)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "assets"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "assets"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload ảnh thiết bị thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
