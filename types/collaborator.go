package types

import "time"

type AddCollaboratorRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Permission string `json:"permission" binding:"required"`
}

type UpdatePermissionRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Permission string `json:"permission" binding:"required"`
}

type CollaboratorInfo struct {
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Permission string    `json:"permission"`
	IsOwner    bool      `json:"is_owner"`
	AddedAt    time.Time `json:"added_at"`
}

type ListCollaboratorsResponse struct {
	Collaborators []*CollaboratorInfo `json:"collaborators"`
}
