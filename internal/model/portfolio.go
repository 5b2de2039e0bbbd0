package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type Portfolio struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index:idx_owner" json:"user_id"` // 每个用户至多一份未删除的作品集，软删行不占约束
	TemplateID  string `gorm:"type:varchar(64);not null" json:"template_id"`
	HeroName    string `gorm:"type:varchar(100);not null" json:"hero_name"`
	HeroTitle   string `gorm:"type:varchar(100)" json:"hero_title"`
	HeroTagline string `gorm:"type:varchar(255)" json:"hero_tagline"`
	AboutMe     string `gorm:"type:text;not null" json:"about_me"`

	Skills SkillList `gorm:"type:json" json:"skills"`
	Slug   string    `gorm:"type:varchar(150);uniqueIndex:idx_slug" json:"slug"`
	Status int8      `gorm:"not null;default:0" json:"status"` // 1:已发布
	Featured bool    `gorm:"type:tinyint(1);not null;default:0" json:"featured"`

	// 冗余的评分聚合字段，由评分变更同步重算
	Views              int64            `gorm:"not null;default:0" json:"views"`
	AverageRating      float64          `gorm:"not null;default:0" json:"average_rating"`
	TotalRatings       int              `gorm:"not null;default:0" json:"total_ratings"`
	RatingDistribution StarDistribution `gorm:"type:json" json:"rating_distribution"`

	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// SkillList 技能列表，JSON 列存储
type SkillList []string

func (s SkillList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SkillList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
}

// StarDistribution 各星级评分计数: map[star]count
type StarDistribution map[int]int

// NewStarDistribution 生成 1..5 全零分布
func NewStarDistribution() StarDistribution {
	return StarDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

func (d StarDistribution) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *StarDistribution) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
}
