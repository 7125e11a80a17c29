package session

import "github.com/KirkDiggler/gamenight/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByChannelInput struct {
	ChannelID string
}

type DeleteSessionInput struct {
	SessionID string
}
