package pool

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"secretsanta/internal/application/pool/dto"
	"secretsanta/internal/application/pool/usecases"
	"secretsanta/internal/infrastructure/template"
	"secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/logger"
	"secretsanta/internal/shared/utils"
)

const (
	managePageTemplate = "pages/manage.html"

	sendFormName    = "send_pool"
	entriesFormName = "entries"
	entryIDToken    = "__id__"
)

// PageRenderer renders a named template in a locale.
type PageRenderer interface {
	Render(locale, name string, data map[string]any) (string, error)
}

// Translator resolves a message key in a locale.
type Translator interface {
	Translate(locale, key string) string
}

type Handler struct {
	getManagePoolUC    usecases.GetManagePoolExecutor
	sendPoolMailsUC    usecases.SendPoolMailsExecutor
	resendEntryMailUC  usecases.ResendEntryMailExecutor
	sendAdminMatchesUC usecases.SendAdminMatchesExecutor
	forgotManageLinkUC usecases.ForgotManageLinkExecutor
	sendReuseLinksUC   usecases.SendReuseLinksExecutor
	getReusePoolUC     usecases.GetReusePoolExecutor
	renderer           PageRenderer
	translator         Translator
	logger             logger.Interface
}

func NewHandler(
	getManagePoolUC usecases.GetManagePoolExecutor,
	sendPoolMailsUC usecases.SendPoolMailsExecutor,
	resendEntryMailUC usecases.ResendEntryMailExecutor,
	sendAdminMatchesUC usecases.SendAdminMatchesExecutor,
	forgotManageLinkUC usecases.ForgotManageLinkExecutor,
	sendReuseLinksUC usecases.SendReuseLinksExecutor,
	getReusePoolUC usecases.GetReusePoolExecutor,
	renderer PageRenderer,
	translator Translator,
	logger logger.Interface,
) *Handler {
	return &Handler{
		getManagePoolUC:    getManagePoolUC,
		sendPoolMailsUC:    sendPoolMailsUC,
		resendEntryMailUC:  resendEntryMailUC,
		sendAdminMatchesUC: sendAdminMatchesUC,
		forgotManageLinkUC: forgotManageLinkUC,
		sendReuseLinksUC:   sendReuseLinksUC,
		getReusePoolUC:     getReusePoolUC,
		renderer:           renderer,
		translator:         translator,
		logger:             logger,
	}
}

// ManagePage handles GET /manage/:listUrl
func (h *Handler) ManagePage(c *gin.Context) {
	listURL := c.Param("listUrl")

	result, err := h.getManagePoolUC.Execute(c.Request.Context(), usecases.GetManagePoolQuery{ListURL: listURL})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := h.renderer.Render(result.Locale, managePageTemplate, h.managePageData(result))
	if err != nil {
		h.logger.Errorw("failed to render manage page", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.HTMLResponse(c, http.StatusOK, page)
}

func (h *Handler) managePageData(p *dto.ManagePoolDTO) map[string]any {
	base := "/manage/" + url.PathEscape(p.ListURL)

	return map[string]any{
		"locale": p.Locale,
		"pool":   p,
		"sendForm": &template.FormView{
			Name:          sendFormName,
			BlockPrefixes: []string{"form", sendFormName},
			Vars: map[string]any{
				"action":  base + "/send",
				"confirm": h.translator.Translate(p.Locale, "manage.confirm_send"),
			},
		},
		"entriesForm": &template.FormView{
			Name:          entriesFormName,
			BlockPrefixes: []string{"form", entriesFormName},
			Vars: map[string]any{
				"resend_url":   base + "/entries/" + entryIDToken + "/resend",
				"resend_label": h.translator.Translate(p.Locale, "manage.resend"),
			},
		},
	}
}

// SendPool handles POST /manage/:listUrl/send
func (h *Handler) SendPool(c *gin.Context) {
	cmd := usecases.SendPoolMailsCommand{ListURL: c.Param("listUrl")}

	result, err := h.sendPoolMailsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pool mails sent", result)
}

// ResendEntry handles POST /manage/:listUrl/entries/:entryId/resend
func (h *Handler) ResendEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "entryId", "entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResendEntryMailCommand{
		ListURL: c.Param("listUrl"),
		EntryID: entryID,
	}
	if err := h.resendEntryMailUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry mail sent", nil)
}

// SendAdminMatches handles POST /manage/:listUrl/admin-matches
func (h *Handler) SendAdminMatches(c *gin.Context) {
	cmd := usecases.SendAdminMatchesCommand{ListURL: c.Param("listUrl")}

	if err := h.sendAdminMatchesUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Match summary sent", nil)
}

// ForgotLink handles POST /forgot-link
func (h *Handler) ForgotLink(c *gin.Context) {
	var req LinkMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for forgot link", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := h.forgotManageLinkUC.Execute(c.Request.Context(), req.ToForgotCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RequestReuse handles POST /reuse
func (h *Handler) RequestReuse(c *gin.Context) {
	var req LinkMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reuse links", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := h.sendReuseLinksUC.Execute(c.Request.Context(), req.ToReuseCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetReusePool handles GET /reuse/:listUrl
func (h *Handler) GetReusePool(c *gin.Context) {
	query := usecases.GetReusePoolQuery{ListURL: c.Param("listUrl")}

	result, err := h.getReusePoolUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
