package controllers

import (
	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	Comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{Comments: comments}
}

// GET /api/users/comments — ล่าสุดก่อน มี limit เสมอ
func (cc *CommentController) List(c *gin.Context) {
	comments, err := cc.Comments.Recent()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"comments": comments})
}

// POST /api/users/comments
func (cc *CommentController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CommentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment, err := cc.Comments.Add(uid, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, comment)
}
