package services

import (
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// PPMServiceAdapter nối PPMService với interface của package jobs
type PPMServiceAdapter struct {
	db *gorm.DB
}

func NewPPMServiceAdapter(db *gorm.DB) *PPMServiceAdapter {
	return &PPMServiceAdapter{db: db}
}

func (a *PPMServiceAdapter) MarkOverdueTasks(m *melody.Melody) error {
	return MarkOverdueTasks(a.db, m)
}
