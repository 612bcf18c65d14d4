// Package seed 初始目录数据
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"holonet-go/internal/model"
	"holonet-go/pkg/logger"
	"holonet-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserSeed 初始用户，明文密码写入前做 bcrypt 哈希
type UserSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

// Dataset 初始数据集，JSON 格式与 API 输出一致
type Dataset struct {
	Users      []UserSeed        `json:"users,omitempty"`
	Characters []model.Character `json:"characters"`
	Planets    []model.Planet    `json:"planets"`
	Vehicles   []model.Vehicle   `json:"vehicles"`
}

// Result 每个表写入的行数，已有数据的表为 0
type Result struct {
	Users      int
	Characters int
	Planets    int
	Vehicles   int
}

func str(s string) *string { return &s }

func price(v int64) *int64 { return &v }

// DefaultDataset 内置数据集
func DefaultDataset() *Dataset {
	return &Dataset{
		Characters: []model.Character{
			{Name: "Luke Skywalker", BirthYear: str("19BBY"), Gender: str("male")},
			{Name: "Leia Organa", BirthYear: str("19BBY"), Gender: str("female")},
			{Name: "Darth Vader", BirthYear: str("41.9BBY"), Gender: str("male")},
		},
		Planets: []model.Planet{
			{Name: "Tatooine", Climate: str("arid"), Terrain: str("desert")},
			{Name: "Alderaan", Climate: str("temperate"), Terrain: str("grasslands, mountains")},
			{Name: "Hoth", Climate: str("frozen"), Terrain: str("tundra, ice caves")},
		},
		Vehicles: []model.Vehicle{
			{Name: "X-wing", Model: str("T-65 X-wing starfighter"), Price: price(150000)},
			{Name: "TIE Fighter", Model: str("TIE/ln space superiority starfighter"), Price: price(75000)},
			{Name: "Millennium Falcon", Model: str("YT-1300 light freighter"), Price: price(1000000)},
		},
	}
}

// Parse 解析 JSON 数据集
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("invalid seed dataset: %w", err)
	}
	for i, c := range ds.Characters {
		if c.Name == "" {
			return nil, fmt.Errorf("character #%d has no name", i)
		}
	}
	for i, p := range ds.Planets {
		if p.Name == "" {
			return nil, fmt.Errorf("planet #%d has no name", i)
		}
	}
	for i, v := range ds.Vehicles {
		if v.Name == "" {
			return nil, fmt.Errorf("vehicle #%d has no name", i)
		}
	}
	for i, u := range ds.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("user #%d has no email", i)
		}
	}
	return &ds, nil
}

// Populate 写入数据集，表中已有数据时跳过该表
func Populate(ctx context.Context, db *gorm.DB, ds *Dataset) (*Result, error) {
	users := make([]model.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		password := u.Password
		if !utils.IsHashed(password) {
			hashed, err := utils.HashPassword(password)
			if err != nil {
				return nil, err
			}
			password = hashed
		}
		users = append(users, model.User{Email: u.Email, Password: password, IsActive: u.IsActive})
	}

	var (
		res Result
		err error
	)
	db = db.WithContext(ctx)
	if res.Users, err = insertIfEmpty(db, users); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	if res.Characters, err = insertIfEmpty(db, ds.Characters); err != nil {
		return nil, fmt.Errorf("seed characters: %w", err)
	}
	if res.Planets, err = insertIfEmpty(db, ds.Planets); err != nil {
		return nil, fmt.Errorf("seed planets: %w", err)
	}
	if res.Vehicles, err = insertIfEmpty(db, ds.Vehicles); err != nil {
		return nil, fmt.Errorf("seed vehicles: %w", err)
	}

	logger.Info("Database populated",
		zap.Int("users", res.Users),
		zap.Int("characters", res.Characters),
		zap.Int("planets", res.Planets),
		zap.Int("vehicles", res.Vehicles),
	)
	return &res, nil
}

func insertIfEmpty[T any](db *gorm.DB, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		// 复制一份，避免回填的主键写回调用方的数据集
		batch := append([]T(nil), rows...)
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		inserted = len(batch)
		return nil
	})
	return inserted, err
}
