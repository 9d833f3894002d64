package model

import (
	"time"

	"standards-hub/backend/common"
)

// Standard represents a category of engineering/testing specifications (ACI, ASTM, ...).
// Standards are seeded at startup and never created or deleted through the API.
type Standard struct {
	Id          int       `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;size:32;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Type        string    `json:"type" gorm:"size:64;not null"`
	Icon        string    `json:"icon" gorm:"size:32"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (s *Standard) TableName() string {
	return "standards"
}

var defaultStandards = []Standard{
	{Code: "ACI", Name: "American Concrete Institute", Type: "ACI", Icon: "🏗️", Description: "American standards for concrete design and testing"},
	{Code: "ASTM", Name: "American Society for Testing and Materials", Type: "ASTM", Icon: "🔬", Description: "American standards for materials and testing"},
	{Code: "BS", Name: "British Standards", Type: "BS", Icon: "🇬🇧", Description: "British standards for engineering and construction"},
}

// SeedDefaultStandards inserts the fixed standard set, skipping codes that already
// exist. Safe to run on every start.
func SeedDefaultStandards() error {
	for _, std := range defaultStandards {
		std := std
		if err := DB.Where(Standard{Code: std.Code}).FirstOrCreate(&std).Error; err != nil {
			return err
		}
	}
	common.SysLog("default standards seeded")
	return nil
}

// GetAllStandards returns every standard in storage order.
func GetAllStandards() ([]*Standard, error) {
	var standards []*Standard
	err := DB.Find(&standards).Error
	if standards == nil {
		standards = []*Standard{}
	}
	return standards, err
}

// GetStandardById returns a single standard or gorm.ErrRecordNotFound.
func GetStandardById(id int) (*Standard, error) {
	var standard Standard
	if err := DB.First(&standard, id).Error; err != nil {
		return nil, err
	}
	return &standard, nil
}

// StandardStatistics is the per-standard usage aggregate.
type StandardStatistics struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	FileCount      int64  `json:"file_count"`
	TotalDownloads int64  `json:"total_downloads"`
}

// GetStatistics reports file count and total downloads per standard. Standards with
// no files report zeroes, never null.
func GetStatistics() ([]StandardStatistics, error) {
	var stats []StandardStatistics
	err := DB.Table("standards").
		Select("standards.code, standards.name, COUNT(files.id) AS file_count, COALESCE(SUM(files.downloads), 0) AS total_downloads").
		Joins("LEFT JOIN files ON files.standard_id = standards.id").
		Group("standards.id").
		Order("standards.id").
		Scan(&stats).Error
	if stats == nil {
		stats = []StandardStatistics{}
	}
	return stats, err
}
