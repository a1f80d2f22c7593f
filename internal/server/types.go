package server

import "harulog/internal/server/store"

type sessionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time,omitempty"`
	Action      *string `json:"action,omitempty"`
	Status      string  `json:"status"`
	IsRest      bool    `json:"is_rest"`
	IsNewAction bool    `json:"is_new_action"`
	SetNumber   *int    `json:"set_number,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type sessionCreateRequest struct {
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Action      *string `json:"action"`
	Status      string  `json:"status"`
	IsRest      bool    `json:"is_rest"`
	IsNewAction bool    `json:"is_new_action"`
	SetNumber   *int    `json:"set_number"`
}

type sessionUpdateRequest struct {
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Action      *string `json:"action"`
	Status      *string `json:"status"`
	IsRest      *bool   `json:"is_rest"`
	IsNewAction *bool   `json:"is_new_action"`
	SetNumber   *int    `json:"set_number"`
}

type bulkUpdateRequest struct {
	Sessions []sessionCreateRequest `json:"sessions"`
}

type dayResponse struct {
	Date     string            `json:"date"`
	Sessions []sessionResponse `json:"sessions"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func toResponse(r store.Record) sessionResponse {
	return sessionResponse{
		ID:          r.ID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Action:      r.Action,
		Status:      r.Status,
		IsRest:      r.IsRest,
		IsNewAction: r.IsNewAction,
		SetNumber:   r.SetNumber,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDayResponse(date string, records []store.Record) dayResponse {
	out := dayResponse{Date: date, Sessions: make([]sessionResponse, 0, len(records))}
	for _, r := range records {
		out.Sessions = append(out.Sessions, toResponse(r))
	}
	return out
}

func toRecord(req sessionCreateRequest) store.Record {
	return store.Record{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Action:      req.Action,
		Status:      req.Status,
		IsRest:      req.IsRest,
		IsNewAction: req.IsNewAction,
		SetNumber:   req.SetNumber,
	}
}
