package api

import (
	"time"

	"harulog/internal/domain"
)

// sessionDTO is the snake_case wire shape of a day session.
type sessionDTO struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	Date        string  `json:"date,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time,omitempty"`
	Action      *string `json:"action,omitempty"`
	Status      string  `json:"status"`
	IsRest      bool    `json:"is_rest,omitempty"`
	IsNewAction bool    `json:"is_new_action,omitempty"`
	SetNumber   *int    `json:"set_number,omitempty"`
}

type dayRecordDTO struct {
	Date     string       `json:"date"`
	Sessions []sessionDTO `json:"sessions"`
}

type dayRecordUpdateDTO struct {
	Date     string       `json:"date"`
	Sessions []sessionDTO `json:"sessions"`
}

type errorDTO struct {
	Detail string `json:"detail"`
}

func toDTO(date string, s domain.Session) sessionDTO {
	dto := sessionDTO{
		ID:          s.ID,
		Date:        date,
		Status:      string(s.Status),
		IsRest:      s.IsRest,
		IsNewAction: s.IsNewAction,
		SetNumber:   s.SetNumber,
	}
	if s.StartTime != nil {
		dto.StartTime = s.StartTime.UTC().Format(time.RFC3339Nano)
	}
	if s.EndTime != nil {
		end := s.EndTime.UTC().Format(time.RFC3339Nano)
		dto.EndTime = &end
	}
	if s.Action != "" {
		action := s.Action
		dto.Action = &action
	}
	return dto
}

func fromDTO(dto sessionDTO) domain.Session {
	s := domain.Session{
		ID:          dto.ID,
		Status:      domain.Status(dto.Status),
		IsRest:      dto.IsRest,
		IsNewAction: dto.IsNewAction,
		SetNumber:   dto.SetNumber,
	}
	if t, err := time.Parse(time.RFC3339Nano, dto.StartTime); err == nil {
		s.StartTime = &t
	}
	if dto.EndTime != nil {
		if t, err := time.Parse(time.RFC3339Nano, *dto.EndTime); err == nil {
			s.EndTime = &t
		}
	}
	if dto.Action != nil {
		s.Action = *dto.Action
	}
	return s
}

func fromRecordDTO(dto dayRecordDTO) domain.DayRecord {
	record := domain.DayRecord{Date: dto.Date, Sessions: make([]domain.Session, 0, len(dto.Sessions))}
	for _, s := range dto.Sessions {
		record.Sessions = append(record.Sessions, fromDTO(s))
	}
	return record
}
