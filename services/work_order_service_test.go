package services

import (
	"testing"
	"time"

	"facility/constants"
	"facility/errors"
	"facility/models"

	"gorm.io/gorm"
)

func newTestWorkOrderService(t *testing.T) (*WorkOrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewWorkOrderService(WorkOrderServiceOptions{DB: db}), db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role int) models.User {
	t.Helper()
	user := models.User{Name: name, Email: name + "@test.local", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func seedWorkOrder(t *testing.T, db *gorm.DB, title string, status int, createdByID uint) models.WorkOrder {
	t.Helper()
	workOrder := models.WorkOrder{
		Title:       title,
		Status:      status,
		Priority:    constants.PriorityMedium,
		HotelID:     1,
		CreatedByID: createdByID,
		IsActive:    true,
	}
	if err := db.Create(&workOrder).Error; err != nil {
		t.Fatalf("seed work order %s: %v", title, err)
	}
	return workOrder
}

func TestAssignRoundRobin(t *testing.T) {
	technicians := []models.User{{ID: 10}, {ID: 20}}
	workOrderIDs := []uint{1, 2, 3}

	assignments := AssignRoundRobin(workOrderIDs, technicians)

	want := map[uint]uint{1: 10, 2: 20, 3: 10}
	for id, technicianID := range want {
		if assignments[id] != technicianID {
			t.Errorf("assignments[%d] = %d, want %d", id, assignments[id], technicianID)
		}
	}
}

func TestAssignRoundRobin_SingleTechnician(t *testing.T) {
	technicians := []models.User{{ID: 7}}
	assignments := AssignRoundRobin([]uint{1, 2, 3}, technicians)

	for _, id := range []uint{1, 2, 3} {
		if assignments[id] != 7 {
			t.Errorf("assignments[%d] = %d, want 7", id, assignments[id])
		}
	}
}

func TestAssignRoundRobin_NoTechnicians(t *testing.T) {
	assignments := AssignRoundRobin([]uint{1, 2}, nil)
	if len(assignments) != 0 {
		t.Errorf("không có kỹ thuật viên thì map phải rỗng, got %v", assignments)
	}
}

func TestBulkAction_EmptyIDs(t *testing.T) {
	service, _ := newTestWorkOrderService(t)

	err := service.BulkAction(BulkActionCancel, nil)
	if !errors.IsValidation(err) {
		t.Errorf("danh sách rỗng phải trả lỗi validation, got %v", err)
	}
}

func TestBulkAction_UnknownAction(t *testing.T) {
	service, _ := newTestWorkOrderService(t)

	err := service.BulkAction("archive", []uint{1})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidAction {
		t.Errorf("action lạ phải trả ErrCodeInvalidAction, got %v", err)
	}
}

func TestBulkAssign_NoTechnicians(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	creator := seedUser(t, db, "staff", constants.RoleStaff)
	workOrder := seedWorkOrder(t, db, "Sửa vòi nước", constants.WorkOrderStatusLogged, creator.ID)

	err := service.BulkAction(BulkActionAssign, []uint{workOrder.ID})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeNoTechnician {
		t.Fatalf("không có kỹ thuật viên phải trả ErrCodeNoTechnician, got %v", err)
	}

	var reloaded models.WorkOrder
	if err := db.First(&reloaded, workOrder.ID).Error; err != nil {
		t.Fatalf("reload work order: %v", err)
	}
	if reloaded.AssignedToID != nil || reloaded.Status != constants.WorkOrderStatusLogged {
		t.Error("thất bại thì không được đổi bản ghi nào")
	}
}

func TestBulkAssign_RoundRobin(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	creator := seedUser(t, db, "staff", constants.RoleStaff)
	tech1 := seedUser(t, db, "tech1", constants.RoleTechnician)
	tech2 := seedUser(t, db, "tech2", constants.RoleTechnician)

	wo1 := seedWorkOrder(t, db, "WO 1", constants.WorkOrderStatusLogged, creator.ID)
	wo2 := seedWorkOrder(t, db, "WO 2", constants.WorkOrderStatusLogged, creator.ID)
	wo3 := seedWorkOrder(t, db, "WO 3", constants.WorkOrderStatusLogged, creator.ID)

	if err := service.BulkAction(BulkActionAssign, []uint{wo1.ID, wo2.ID, wo3.ID}); err != nil {
		t.Fatalf("BulkAction assign: %v", err)
	}

	want := map[uint]uint{wo1.ID: tech1.ID, wo2.ID: tech2.ID, wo3.ID: tech1.ID}
	for workOrderID, technicianID := range want {
		var reloaded models.WorkOrder
		if err := db.First(&reloaded, workOrderID).Error; err != nil {
			t.Fatalf("reload work order %d: %v", workOrderID, err)
		}
		if reloaded.AssignedToID == nil || *reloaded.AssignedToID != technicianID {
			t.Errorf("work order %d giao cho %v, want %d", workOrderID, reloaded.AssignedToID, technicianID)
		}
		if reloaded.Status != constants.WorkOrderStatusInProgress {
			t.Errorf("work order %d status = %d, want %d", workOrderID, reloaded.Status, constants.WorkOrderStatusInProgress)
		}
	}
}

func TestBulkCancel(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	creator := seedUser(t, db, "staff", constants.RoleStaff)
	wo1 := seedWorkOrder(t, db, "WO 1", constants.WorkOrderStatusLogged, creator.ID)
	wo2 := seedWorkOrder(t, db, "WO 2", constants.WorkOrderStatusInProgress, creator.ID)

	if err := service.BulkAction(BulkActionCancel, []uint{wo1.ID, wo2.ID}); err != nil {
		t.Fatalf("BulkAction cancel: %v", err)
	}

	for _, id := range []uint{wo1.ID, wo2.ID} {
		var reloaded models.WorkOrder
		if err := db.First(&reloaded, id).Error; err != nil {
			t.Fatalf("reload work order %d: %v", id, err)
		}
		if reloaded.Status != constants.WorkOrderStatusCancelled {
			t.Errorf("work order %d status = %d, want %d", id, reloaded.Status, constants.WorkOrderStatusCancelled)
		}
	}
}

func TestBulkDelete(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	creator := seedUser(t, db, "staff", constants.RoleStaff)
	wo1 := seedWorkOrder(t, db, "WO 1", constants.WorkOrderStatusLogged, creator.ID)
	wo2 := seedWorkOrder(t, db, "WO 2", constants.WorkOrderStatusLogged, creator.ID)
	keep := seedWorkOrder(t, db, "WO giữ lại", constants.WorkOrderStatusLogged, creator.ID)

	if err := service.BulkAction(BulkActionDelete, []uint{wo1.ID, wo2.ID}); err != nil {
		t.Fatalf("BulkAction delete: %v", err)
	}

	var count int64
	db.Model(&models.WorkOrder{}).Count(&count)
	if count != 1 {
		t.Errorf("số work order còn lại = %d, want 1", count)
	}
	var reloaded models.WorkOrder
	if err := db.First(&reloaded, keep.ID).Error; err != nil {
		t.Errorf("work order ngoài danh sách không được bị xóa: %v", err)
	}
}

func TestMyOpenCount(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	me := seedUser(t, db, "me", constants.RoleStaff)
	other := seedUser(t, db, "other", constants.RoleStaff)

	seedWorkOrder(t, db, "Logged", constants.WorkOrderStatusLogged, me.ID)
	seedWorkOrder(t, db, "In progress", constants.WorkOrderStatusInProgress, me.ID)
	seedWorkOrder(t, db, "On hold", constants.WorkOrderStatusOnHold, me.ID)
	seedWorkOrder(t, db, "Completed", constants.WorkOrderStatusCompleted, me.ID)
	seedWorkOrder(t, db, "Cancelled", constants.WorkOrderStatusCancelled, me.ID)
	seedWorkOrder(t, db, "Của người khác", constants.WorkOrderStatusLogged, other.ID)

	count, err := service.MyOpenCount(me.ID)
	if err != nil {
		t.Fatalf("MyOpenCount: %v", err)
	}
	if count != 3 {
		t.Errorf("MyOpenCount = %d, want 3", count)
	}
}

func TestMyRecent_LimitAndOrder(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	me := seedUser(t, db, "me", constants.RoleStaff)
	for i := 0; i < 7; i++ {
		workOrder := models.WorkOrder{
			Title:       "WO",
			Status:      constants.WorkOrderStatusLogged,
			Priority:    constants.PriorityLow,
			HotelID:     1,
			CreatedByID: me.ID,
			IsActive:    true,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&workOrder).Error; err != nil {
			t.Fatalf("seed work order: %v", err)
		}
	}

	workOrders, err := service.MyRecent(me.ID)
	if err != nil {
		t.Fatalf("MyRecent: %v", err)
	}
	if len(workOrders) != 5 {
		t.Fatalf("MyRecent trả về %d bản ghi, want 5", len(workOrders))
	}
	for i := 1; i < len(workOrders); i++ {
		if workOrders[i].CreatedAt.After(workOrders[i-1].CreatedAt) {
			t.Error("kết quả phải sắp xếp mới nhất trước")
			break
		}
	}
}

func TestAddComment(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	author := seedUser(t, db, "author", constants.RoleTechnician)
	workOrder := seedWorkOrder(t, db, "WO", constants.WorkOrderStatusInProgress, author.ID)

	comment, err := service.AddComment(workOrder.ID, author.ID, "Đã thay linh kiện", "")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.Type != "comment" {
		t.Errorf("Type mặc định = %q, want comment", comment.Type)
	}
	if comment.Author == nil || comment.Author.ID != author.ID {
		t.Error("bình luận trả về phải kèm thông tin người viết")
	}
}

func TestAddComment_WorkOrderNotFound(t *testing.T) {
	service, _ := newTestWorkOrderService(t)

	_, err := service.AddComment(999, 1, "Nội dung", "comment")
	if !errors.IsNotFound(err) {
		t.Errorf("work order không tồn tại phải trả lỗi not found, got %v", err)
	}
}

func TestListComments_NewestFirst(t *testing.T) {
	service, db := newTestWorkOrderService(t)

	author := seedUser(t, db, "author", constants.RoleTechnician)
	workOrder := seedWorkOrder(t, db, "WO", constants.WorkOrderStatusInProgress, author.ID)

	old := models.WorkOrderComment{WorkOrderID: workOrder.ID, AuthorID: author.ID, Content: "cũ", Type: "comment", CreatedAt: time.Now().Add(-time.Hour)}
	recent := models.WorkOrderComment{WorkOrderID: workOrder.ID, AuthorID: author.ID, Content: "mới", Type: "comment", CreatedAt: time.Now()}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	comments, err := service.ListComments(workOrder.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("số bình luận = %d, want 2", len(comments))
	}
	if comments[0].Content != "mới" {
		t.Errorf("bình luận đầu tiên = %q, want mới", comments[0].Content)
	}
}
