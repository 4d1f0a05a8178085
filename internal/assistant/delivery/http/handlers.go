package http

import (
	"github.com/gin-gonic/gin"

	"bank-policy-assistant/pkg/response"
)

// Chat godoc
// @Summary     Ask the policy assistant
// @Description Routes the query by intent and returns the assistant's reply. Policy questions go through retrieval and LLM synthesis; leave commands hit the employee directory.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Username and query"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty query or malformed body"
// @Failure     404 {object} response.Resp "Not Found - unknown username"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.directory.GetUser(ctx, req.Username)
	if err != nil {
		h.l.Errorf(ctx, "directory.GetUser: %v", err)
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, errUserNotFound)
		return
	}

	output, err := h.uc.HandleQuery(ctx, req.Query, *user)
	if err != nil {
		// The use case only surfaces ErrEmptyQuery; everything else is
		// already formatted into the reply.
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}
