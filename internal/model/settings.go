package model

import "time"

// SiteSettings is the storefront-wide configuration singleton.
type SiteSettings struct {
	ID                 int       `json:"id"`
	SiteName           string    `json:"siteName"`
	PrimaryColor       string    `json:"primaryColor"`
	SecondaryColor     string    `json:"secondaryColor"`
	Logo               *string   `json:"logo"`
	Hero               *string   `json:"hero"`
	Background         *string   `json:"background"`
	ContactEmail       *string   `json:"contactEmail"`
	ContactPhone       *string   `json:"contactPhone"`
	WhatsAppNumber     *string   `json:"whatsappNumber"`
	FooterText         *string   `json:"footerText"`
	EnableRegistration bool      `json:"enableRegistration"`
	EnableVerification bool      `json:"enableVerification"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// SettingsUpdate carries a partial settings edit; nil fields are left as-is.
type SettingsUpdate struct {
	SiteName           *string `json:"siteName,omitempty"`
	PrimaryColor       *string `json:"primaryColor,omitempty"`
	SecondaryColor     *string `json:"secondaryColor,omitempty"`
	Logo               *string `json:"logo,omitempty"`
	Hero               *string `json:"hero,omitempty"`
	Background         *string `json:"background,omitempty"`
	ContactEmail       *string `json:"contactEmail,omitempty"`
	ContactPhone       *string `json:"contactPhone,omitempty"`
	WhatsAppNumber     *string `json:"whatsappNumber,omitempty"`
	FooterText         *string `json:"footerText,omitempty"`
	EnableRegistration *bool   `json:"enableRegistration,omitempty"`
	EnableVerification *bool   `json:"enableVerification,omitempty"`
}
