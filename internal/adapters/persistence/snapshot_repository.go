package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sdudley/hexfront-go/internal/domain/game"
	"github.com/sdudley/hexfront-go/internal/domain/inhibition"
	"github.com/sdudley/hexfront-go/internal/domain/ledger"
	"github.com/sdudley/hexfront-go/internal/domain/order"
	"github.com/sdudley/hexfront-go/internal/domain/shared"
	"github.com/sdudley/hexfront-go/internal/domain/unit"
)

// ErrSnapshotNotFound is returned when loading a snapshot name that was
// never saved.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// GormSnapshotRepository persists complete game states using GORM. A save
// replaces the named snapshot atomically; a load rebuilds the full domain
// aggregate and must round-trip exactly.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Save persists the state under the given name, replacing any previous
// snapshot with that name.
func (r *GormSnapshotRepository) Save(ctx context.Context, name string, s *game.State) error {
	galaxyJSON, err := marshalGalaxy(s.Galaxy())
	if err != nil {
		return err
	}
	inhibitionJSON, err := json.Marshal(s.Inhibition().Fields())
	if err != nil {
		return fmt.Errorf("failed to marshal inhibition fields: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_name = ?", name).Delete(&PlayerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_name = ?", name).Delete(&UnitModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("name = ?", name).Delete(&GameModel{}).Error; err != nil {
			return err
		}

		gm := &GameModel{
			Name:       name,
			Turn:       s.Turn(),
			NextUnitID: s.NextUnitID(),
			Galaxy:     galaxyJSON,
			Inhibition: string(inhibitionJSON),
		}
		if err := tx.Create(gm).Error; err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		for _, p := range s.Players() {
			pm := &PlayerModel{
				GameName: name,
				PlayerID: p.ID().Value(),
				Name:     p.Name(),
				Color:    p.Color(),
				Human:    p.IsHuman(),
				Credits:  p.Credits(),
				Metal:    p.Metal(),
				Crystal:  p.Crystal(),
			}
			if err := tx.Create(pm).Error; err != nil {
				return fmt.Errorf("failed to save player %s: %w", p.ID(), err)
			}
		}

		for _, u := range s.Units() {
			um, err := unitToModel(name, u)
			if err != nil {
				return err
			}
			if err := tx.Create(um).Error; err != nil {
				return fmt.Errorf("failed to save unit %d: %w", u.ID(), err)
			}
		}
		return nil
	})
}

// Load rebuilds the named snapshot into a fresh game state.
func (r *GormSnapshotRepository) Load(ctx context.Context, name string) (*game.State, error) {
	var gm GameModel
	if err := r.db.WithContext(ctx).First(&gm, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	g, err := unmarshalGalaxy(gm.Galaxy)
	if err != nil {
		return nil, err
	}

	var fields []inhibition.ActiveField
	if gm.Inhibition != "" {
		if err := json.Unmarshal([]byte(gm.Inhibition), &fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inhibition fields: %w", err)
		}
	}
	tracker, err := inhibition.ReconstructTracker(fields)
	if err != nil {
		return nil, err
	}

	var playerModels []PlayerModel
	if err := r.db.WithContext(ctx).
		Where("game_name = ?", name).
		Order("player_id").
		Find(&playerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	players := make([]*ledger.Player, 0, len(playerModels))
	for _, pm := range playerModels {
		id, err := shared.NewPlayerID(pm.PlayerID)
		if err != nil {
			return nil, err
		}
		p, err := ledger.NewPlayer(id, pm.Name, pm.Color, pm.Human, pm.Credits, pm.Metal, pm.Crystal)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	var unitModels []UnitModel
	if err := r.db.WithContext(ctx).
		Where("game_name = ?", name).
		Order("unit_id").
		Find(&unitModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	units := make([]*unit.Unit, 0, len(unitModels))
	for _, um := range unitModels {
		u, err := unitFromModel(&um)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return game.ReconstructState(g, players, units, tracker, gm.Turn, gm.NextUnitID)
}

// Delete removes the named snapshot.
func (r *GormSnapshotRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_name = ?", name).Delete(&PlayerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_name = ?", name).Delete(&UnitModel{}).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", name).Delete(&GameModel{}).Error
	})
}

// List returns the saved snapshot names in name order.
func (r *GormSnapshotRepository) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&GameModel{}).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return names, nil
}

func unitToModel(gameName string, u *unit.Unit) (*UnitModel, error) {
	components, err := json.Marshal(u.Components())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal components of unit %d: %w", u.ID(), err)
	}
	orders, err := json.Marshal(u.Queue().Orders())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal orders of unit %d: %w", u.ID(), err)
	}

	loc := u.Location()
	return &UnitModel{
		GameName:   gameName,
		UnitID:     u.ID(),
		OwnerID:    u.Owner().Value(),
		Name:       u.Name(),
		Hull:       string(u.Hull()),
		HitPoints:  u.HitPoints(),
		System:     loc.System,
		SectorQ:    loc.Sector.Q,
		SectorR:    loc.Sector.R,
		OffsetX:    loc.Offset.X,
		OffsetY:    loc.Offset.Y,
		Components: string(components),
		Orders:     string(orders),
	}, nil
}

func unitFromModel(um *UnitModel) (*unit.Unit, error) {
	owner, err := shared.NewPlayerID(um.OwnerID)
	if err != nil {
		return nil, err
	}
	hull, err := unit.ParseHullClass(um.Hull)
	if err != nil {
		return nil, err
	}

	var components []*unit.Component
	if um.Components != "" {
		if err := json.Unmarshal([]byte(um.Components), &components); err != nil {
			return nil, fmt.Errorf("failed to unmarshal components of unit %d: %w", um.UnitID, err)
		}
	}
	var orders []*order.Order
	if um.Orders != "" {
		if err := json.Unmarshal([]byte(um.Orders), &orders); err != nil {
			return nil, fmt.Errorf("failed to unmarshal orders of unit %d: %w", um.UnitID, err)
		}
	}

	return unit.ReconstructUnit(
		um.UnitID,
		owner,
		um.Name,
		hull,
		components,
		unit.Location{
			System: um.System,
			Sector: shared.NewHexCoord(um.SectorQ, um.SectorR),
			Offset: shared.Position{X: um.OffsetX, Y: um.OffsetY},
		},
		um.HitPoints,
		order.ReconstructQueue(orders),
	)
}
