package mapper

import (
	"encoding/json"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	metadata := make(map[string]interface{})
	if len(n.Metadata) > 0 {
		_ = json.Unmarshal(n.Metadata, &metadata)
	}

	return &entity.Notification{
		Id:        n.Id,
		MemberId:  n.MemberId,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  metadata,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(e *entity.Notification) *model.Notification {
	if e == nil {
		return nil
	}
	raw, _ := json.Marshal(e.Metadata)

	return &model.Notification{
		Id:        e.Id,
		MemberId:  e.MemberId,
		TypeCode:  e.TypeCode,
		Title:     e.Title,
		Message:   e.Message,
		Metadata:  datatypes.JSON(raw),
		CreatedAt: e.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(models []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, 0, len(models))
	for _, n := range models {
		entities = append(entities, m.ToEntity(n))
	}
	return entities
}
