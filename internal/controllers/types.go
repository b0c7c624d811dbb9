package controllers

import (
	"github.com/google/uuid"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/session"
)

// URIID is the URI binding for all routes that have an ID parameter.
type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"`
}

// Sessions is the session store gating access to the application. It is
// set by the router during startup.
var Sessions *session.Store

// SplitRules are the rules the virtual budget rows are derived with.
// They are loaded by the router during startup.
var SplitRules []models.SplitRule
