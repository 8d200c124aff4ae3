package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spareround/backend/internal/httputil"
	"github.com/spareround/backend/internal/models"
	"github.com/spareround/backend/internal/wire"
)

// RegisterAutomationRoutes registers the routes for automations with
// the RouterGroup that is passed.
func (co Controller) RegisterAutomationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAutomationList)
	r.GET("", GetAutomations)
	r.POST("", co.CreateAutomation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Automations
// @Success		204
// @Router			/v1/automations [options]
func OptionsAutomationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Set an automation rule
// @Description	Stores the rule at (owner, slot), replacing any previous rule there wholesale. The rule is always stored enabled; switch a rule off by overwriting it with a zero increment. The authenticated caller in the X-Owner header must match the owner and be authorized by the host.
// @Tags			Automations
// @Produce		json
// @Success		200			{object}	AutomationResponse
// @Failure		400			{object}	AutomationResponse
// @Failure		403			{object}	AutomationResponse
// @Failure		500			{object}	AutomationResponse
// @Param			automation	body		AutomationEditable	true	"Automation rule"
// @Param			X-Owner		header		string				true	"Authenticated caller address"
// @Router			/v1/automations [post]
func (co Controller) CreateAutomation(c *gin.Context) {
	var editable AutomationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	owner, err := wire.ParseAddress(editable.Owner)
	if err != nil {
		e := models.ErrOwnerInvalid.Error()
		c.JSON(http.StatusBadRequest, AutomationResponse{Error: &e})
		return
	}

	caller, err := wire.ParseAddress(c.GetHeader("X-Owner"))
	if err != nil {
		e := errCallerUnset.Error()
		c.JSON(http.StatusForbidden, AutomationResponse{Error: &e})
		return
	}

	// Writes are gated twice: the caller must be the owner, and the host
	// must authorize the action. Nothing is stored when either fails.
	if caller != owner {
		e := errCallerMismatch.Error()
		c.JSON(http.StatusForbidden, AutomationResponse{Error: &e})
		return
	}

	if !co.Host.Authorize(owner, "rules.set") {
		e := errWriteUnauthorized.Error()
		c.JSON(http.StatusForbidden, AutomationResponse{Error: &e})
		return
	}

	rule, err := models.SetRule(models.DB, owner.String(), editable.Slot, strings.ToLower(editable.SavingsDestination), editable.RoundUpIncrement)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutomationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AutomationResponse{Data: &rule})
}

// @Summary		Get automation rules
// @Description	Returns the rules stored for an owner, or a single rule when the slot parameter is set. A slot that has never been written returns the zero-value rule with enabled set to false.
// @Tags			Automations
// @Produce		json
// @Success		200		{object}	AutomationListResponse
// @Failure		400		{object}	AutomationListResponse
// @Failure		500		{object}	AutomationListResponse
// @Param			owner	query		string	true	"Owner address"
// @Param			slot	query		uint	false	"Rule slot"
// @Router			/v1/automations [get]
func GetAutomations(c *gin.Context) {
	var filter AutomationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AutomationListResponse{Error: &s})
		return
	}

	if filter.Owner == "" {
		s := errOwnerParameter.Error()
		c.JSON(http.StatusBadRequest, AutomationListResponse{Error: &s})
		return
	}

	owner, err := wire.ParseAddress(filter.Owner)
	if err != nil {
		s := models.ErrOwnerInvalid.Error()
		c.JSON(http.StatusBadRequest, AutomationListResponse{Error: &s})
		return
	}

	if filter.Slot != nil {
		rule, err := models.GetRule(models.DB, owner.String(), *filter.Slot)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AutomationListResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, AutomationListResponse{Data: []models.SavingsAutomation{rule}})
		return
	}

	rules, err := models.Rules(models.DB, owner.String())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AutomationListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AutomationListResponse{Data: rules})
}
