package model

import (
	"errors"
	"fmt"
)

// Kind 目录实体类型
type Kind string

const (
	KindPlanet    Kind = "planet"
	KindCharacter Kind = "character"
	KindVehicle   Kind = "vehicle"
)

// Kinds 所有目录类型，顺序固定
var Kinds = []Kind{KindCharacter, KindPlanet, KindVehicle}

var ErrUnknownKind = errors.New("unknown catalog kind")

// ParseKind 解析字符串形式的类型
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlanet, KindCharacter, KindVehicle:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	return string(k)
}

// Column 返回 favorite 表中对应的外键列名
func (k Kind) Column() string {
	return string(k) + "_id"
}

// Target 收藏目标，类型 + ID 的标签联合
type Target struct {
	Kind Kind
	ID   int64
}

func (t Target) String() string {
	return fmt.Sprintf("%s-%d", t.Kind, t.ID)
}
