package service

import (
	"errors"

	"holonet-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrCharacterNotFound = errors.New("Character not found")
	ErrPlanetNotFound    = errors.New("Planet not found")
	ErrVehicleNotFound   = errors.New("Vehicle not found")
	ErrFavoriteNotFound  = errors.New("Favorite not found")
	ErrAlreadyFavorited  = errors.New("Favorite already exists")
	ErrInvalidKind       = errors.New("Invalid catalog kind")
)

// NotFoundFor 返回目录类型对应的不存在错误
func NotFoundFor(kind model.Kind) error {
	switch kind {
	case model.KindCharacter:
		return ErrCharacterNotFound
	case model.KindPlanet:
		return ErrPlanetNotFound
	case model.KindVehicle:
		return ErrVehicleNotFound
	}
	return ErrInvalidKind
}

// IsNotFound 判断是否为任意一种不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCharacterNotFound) ||
		errors.Is(err, ErrPlanetNotFound) ||
		errors.Is(err, ErrVehicleNotFound) ||
		errors.Is(err, ErrFavoriteNotFound)
}

// translateNotFound 把 gorm 的记录不存在转换为业务错误
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
