package handlers

import (
	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

type RespEntitlement struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    entitlementResp          `json:"data"`
}

type RespCanUse struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    canUseResp               `json:"data"`
}

type RespRemaining struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    entitlement.Remaining    `json:"data"`
}

type RespSubscription struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Subscription      `json:"data"`
}

type RespPrayer struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Prayer            `json:"data"`
}

type RespPrayers struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Prayer          `json:"data"`
}

type RespShareCard struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    generation.ShareCard     `json:"data"`
}

type RespFolder struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Folder            `json:"data"`
}

type RespFolders struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Folder          `json:"data"`
}

type RespProfile struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.UserProfile       `json:"data"`
}
