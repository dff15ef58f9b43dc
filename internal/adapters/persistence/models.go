package persistence

import (
	"time"
)

// GameModel represents the games table. One row per named snapshot; the
// galaxy topology and inhibition index ride along as JSON documents.
type GameModel struct {
	Name       string    `gorm:"column:name;primaryKey"`
	Turn       int       `gorm:"column:turn;not null"`
	NextUnitID int       `gorm:"column:next_unit_id;not null"`
	Galaxy     string    `gorm:"column:galaxy;type:text;not null"`     // JSON document
	Inhibition string    `gorm:"column:inhibition;type:text"`          // JSON array of active fields
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GameModel) TableName() string {
	return "games"
}

// PlayerModel represents the game_players table
type PlayerModel struct {
	GameName string `gorm:"column:game_name;primaryKey"`
	PlayerID int    `gorm:"column:player_id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Color    string `gorm:"column:color"`
	Human    bool   `gorm:"column:human;not null;default:false"`
	Credits  int64  `gorm:"column:credits;not null;default:0"`
	Metal    int64  `gorm:"column:metal;not null;default:0"`
	Crystal  int64  `gorm:"column:crystal;not null;default:0"`
}

func (PlayerModel) TableName() string {
	return "game_players"
}

// UnitModel represents the game_units table. Components and the order queue
// are JSON documents; their shapes change too often for columns.
type UnitModel struct {
	GameName   string  `gorm:"column:game_name;primaryKey"`
	UnitID     int     `gorm:"column:unit_id;primaryKey"`
	OwnerID    int     `gorm:"column:owner_id;not null"`
	Name       string  `gorm:"column:name;not null"`
	Hull       string  `gorm:"column:hull;not null"`
	HitPoints  int     `gorm:"column:hit_points;not null"`
	System     string  `gorm:"column:system;not null"`
	SectorQ    int     `gorm:"column:sector_q;not null"`
	SectorR    int     `gorm:"column:sector_r;not null"`
	OffsetX    float64 `gorm:"column:offset_x;not null"`
	OffsetY    float64 `gorm:"column:offset_y;not null"`
	Components string  `gorm:"column:components;type:text"` // JSON array
	Orders     string  `gorm:"column:orders;type:text"`     // JSON array
}

func (UnitModel) TableName() string {
	return "game_units"
}
